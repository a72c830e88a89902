// Copyright 2015 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client is the RPC facade a bridge adapter calls into: one
// method per filesystem operation, each taking care of the wire call,
// the session check, and — on a detected server restart — a single
// transparent recovery-and-retry. This is the piece spec.md calls out
// as the heart of the system.
package client

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/netfuse/netfuse/internal/client/handle"
	"github.com/netfuse/netfuse/internal/client/journal"
	"github.com/netfuse/netfuse/internal/rfserrno"
	"github.com/netfuse/netfuse/internal/session"
	"github.com/netfuse/netfuse/rfsproto"
)

// callTimeout is the "deadline far in the future" spec.md asks for:
// long enough that it never fires in practice, short enough that a
// totally wedged connection doesn't hang a caller forever.
const callTimeout = 24 * time.Hour

// Client is the stateful facade a bridge adapter holds one of per
// mount. It owns the handle table and write journal for that mount and
// is safe for concurrent use.
type Client struct {
	rpc  rfsproto.RemoteFSClient
	conn *grpc.ClientConn

	handles *handle.Table
	journal *journal.Journal

	// recoveryMu is the single process-wide lock named in spec.md §5:
	// only one recovery runs at a time, and every other in-flight call
	// either finishes against the old epoch or blocks until recovery
	// hands it a fresh one.
	recoveryMu sync.Mutex
}

// New wraps an already-dialed connection.
func New(conn *grpc.ClientConn) *Client {
	return &Client{
		rpc:     rfsproto.NewRemoteFSClient(conn),
		conn:    conn,
		handles: handle.New(),
		journal: journal.New(),
	}
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func callContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, callTimeout)
}

////////////////////////////////////////////////////////////////////////
// Session-free operations
////////////////////////////////////////////////////////////////////////

func (c *Client) Getattr(ctx context.Context, path string) (*rfsproto.Attr, int) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Getattr(ctx, &rfsproto.GetattrRequest{Path: path}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return nil, -int(transportErrno(err))
	}
	if reply.Err != 0 {
		return nil, -int(reply.Err)
	}
	return reply.Attr, 0
}

func (c *Client) Readdir(ctx context.Context, path string) ([]*rfsproto.DirEntry, int) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Readdir(ctx, &rfsproto.ReaddirRequest{Path: path}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return nil, -int(transportErrno(err))
	}

	// The terminating entry carries the result code and no payload
	// (I5); everything before it is real.
	if n := len(reply.Entries); n > 0 {
		if last := reply.Entries[n-1]; last.Err != 0 {
			return nil, -int(last.Err)
		}
		return reply.Entries[:n-1], 0
	}
	return nil, 0
}

func (c *Client) Mkdir(ctx context.Context, path string, mode uint32) int {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Mkdir(ctx, &rfsproto.MkdirRequest{Path: path, Mode: mode}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}
	return -int(reply.Err)
}

func (c *Client) Rmdir(ctx context.Context, path string) int {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Rmdir(ctx, &rfsproto.RmdirRequest{Path: path}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}
	return -int(reply.Err)
}

func (c *Client) Unlink(ctx context.Context, path string) int {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Unlink(ctx, &rfsproto.UnlinkRequest{Path: path}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}
	return -int(reply.Err)
}

func (c *Client) Rename(ctx context.Context, from, to string) int {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Rename(ctx, &rfsproto.RenameRequest{From: from, To: to}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}
	return -int(reply.Err)
}

func (c *Client) Utimens(ctx context.Context, path string, atimeSec, atimeNsec, mtimeSec, mtimeNsec int64) int {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Utimens(ctx, &rfsproto.UtimensRequest{
		Path:      path,
		AtimeSec:  atimeSec,
		AtimeNsec: atimeNsec,
		MtimeSec:  mtimeSec,
		MtimeNsec: mtimeNsec,
	}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}
	return -int(reply.Err)
}

func (c *Client) Statfs(ctx context.Context, path string) (*rfsproto.StatfsReply, int) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Statfs(ctx, &rfsproto.StatfsRequest{Path: path}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return nil, -int(transportErrno(err))
	}
	if reply.Err != 0 {
		return nil, -int(reply.Err)
	}
	return reply, 0
}

////////////////////////////////////////////////////////////////////////
// Handle-bearing operations
////////////////////////////////////////////////////////////////////////

// Open and Create mint a fresh epoch and so never recover: there is
// nothing stale to recover from yet.

func (c *Client) Open(ctx context.Context, path string, flags int32) (uint64, int) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Open(ctx, &rfsproto.OpenRequest{Path: path, Flags: flags}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return 0, -int(transportErrno(err))
	}
	if reply.Err != 0 {
		return 0, -int(reply.Err)
	}

	h, allocErr := c.handles.Alloc(handle.Entry{
		Path:         path,
		Flags:        flags,
		ServerHandle: reply.Handle,
		Epoch:        session.Epoch(reply.Epoch),
	})
	if allocErr != nil {
		return 0, -int(rfserrno.ErrOutOfHandles)
	}
	return h, 0
}

func (c *Client) Create(ctx context.Context, path string, mode uint32, flags int32) (uint64, int) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Create(ctx, &rfsproto.CreateRequest{Path: path, Mode: mode, Flags: flags}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return 0, -int(transportErrno(err))
	}
	if reply.Err != 0 {
		return 0, -int(reply.Err)
	}

	h, allocErr := c.handles.Alloc(handle.Entry{
		Path:         path,
		Flags:        flags,
		ServerHandle: reply.Handle,
		Epoch:        session.Epoch(reply.Epoch),
	})
	if allocErr != nil {
		return 0, -int(rfserrno.ErrOutOfHandles)
	}
	return h, 0
}

func (c *Client) Read(ctx context.Context, h uint64, offset int64, count int32) ([]byte, int) {
	entry, ok := c.handles.Lookup(h)
	if !ok {
		return nil, -int(rfserrno.EBADF)
	}

	ctx, cancel := callContext(ctx)
	defer cancel()

	reply, err := c.rpc.Read(ctx, &rfsproto.ReadRequest{
		Handle: entry.ServerHandle,
		Epoch:  uint64(entry.Epoch),
		Offset: offset,
		Count:  count,
	}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return nil, -int(transportErrno(err))
	}

	if reply.Err == rfsproto.ServerCrashCode {
		if rerr := c.recover(ctx, h, session.Epoch(reply.NewSessionId)); rerr != 0 {
			return nil, rerr
		}
		entry, _ = c.handles.Lookup(h)
		reply, err = c.rpc.Read(ctx, &rfsproto.ReadRequest{
			Handle: entry.ServerHandle,
			Epoch:  uint64(entry.Epoch),
			Offset: offset,
			Count:  count,
		}, grpc.WaitForReady(true))
		if code := status.Code(err); code != codes.OK {
			return nil, -int(transportErrno(err))
		}
	}

	if reply.Err != 0 {
		return nil, -int(reply.Err)
	}
	return reply.Data, 0
}

func (c *Client) Write(ctx context.Context, h uint64, offset int64, data []byte) (int, int) {
	entry, ok := c.handles.Lookup(h)
	if !ok {
		return 0, -int(rfserrno.EBADF)
	}

	ctx, cancel := callContext(ctx)
	defer cancel()

	req := &rfsproto.WriteRequest{Handle: entry.ServerHandle, Epoch: uint64(entry.Epoch), Offset: offset, Data: data}
	reply, err := c.rpc.Write(ctx, req, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return 0, -int(transportErrno(err))
	}

	if reply.Err == rfsproto.ServerCrashCode {
		if rerr := c.recover(ctx, h, session.Epoch(reply.NewSessionId)); rerr != 0 {
			return 0, rerr
		}
		entry, _ = c.handles.Lookup(h)
		req.Handle, req.Epoch = entry.ServerHandle, uint64(entry.Epoch)
		reply, err = c.rpc.Write(ctx, req, grpc.WaitForReady(true))
		if code := status.Code(err); code != codes.OK {
			return 0, -int(transportErrno(err))
		}
	}

	if reply.Err != 0 {
		return 0, -int(reply.Err)
	}

	c.journal.Append(h, offset, data)
	return int(reply.BytesWritten), 0
}

func (c *Client) CommitWrite(ctx context.Context, h uint64) int {
	entry, ok := c.handles.Lookup(h)
	if !ok {
		return -int(rfserrno.EBADF)
	}

	ctx, cancel := callContext(ctx)
	defer cancel()

	req := &rfsproto.CommitWriteRequest{Handle: entry.ServerHandle, Epoch: uint64(entry.Epoch)}
	reply, err := c.rpc.CommitWrite(ctx, req, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}

	if reply.Err == rfsproto.ServerCrashCode {
		if rerr := c.recover(ctx, h, session.Epoch(reply.NewSessionId)); rerr != 0 {
			return rerr
		}
		entry, _ = c.handles.Lookup(h)
		req.Handle, req.Epoch = entry.ServerHandle, uint64(entry.Epoch)
		reply, err = c.rpc.CommitWrite(ctx, req, grpc.WaitForReady(true))
		if code := status.Code(err); code != codes.OK {
			return -int(transportErrno(err))
		}
	}

	if reply.Err != 0 {
		return -int(reply.Err)
	}

	c.journal.Clear(h)
	return 0
}

func (c *Client) Release(ctx context.Context, h uint64) int {
	entry, ok := c.handles.Lookup(h)
	if !ok {
		return -int(rfserrno.EBADF)
	}

	ctx, cancel := callContext(ctx)
	defer cancel()

	req := &rfsproto.ReleaseRequest{Handle: entry.ServerHandle, Epoch: uint64(entry.Epoch)}
	reply, err := c.rpc.Release(ctx, req, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		c.handles.Free(h)
		c.journal.Clear(h)
		return -int(transportErrno(err))
	}

	if reply.Err == rfsproto.ServerCrashCode {
		// Reopen and replay against the new server, then release the
		// fresh server handle. On a failed reopen the entry and its
		// journal are kept for a later attempt.
		if rerr := c.recover(ctx, h, session.Epoch(reply.NewSessionId)); rerr != 0 {
			return rerr
		}
		entry, _ = c.handles.Lookup(h)
		req.Handle, req.Epoch = entry.ServerHandle, uint64(entry.Epoch)
		reply, err = c.rpc.Release(ctx, req, grpc.WaitForReady(true))
		if code := status.Code(err); code != codes.OK {
			c.handles.Free(h)
			c.journal.Clear(h)
			return -int(transportErrno(err))
		}
	}

	c.handles.Free(h)
	c.journal.Clear(h)
	if reply.Err != 0 {
		return -int(reply.Err)
	}
	return 0
}

////////////////////////////////////////////////////////////////////////
// Recovery
////////////////////////////////////////////////////////////////////////

// recover reopens the file behind h against the server's new epoch and
// replays every write its journal still holds, updating c.handles in
// place. It holds recoveryMu for its entire body, so at most one
// recovery runs at a time process-wide (spec.md §5, §9).
func (c *Client) recover(ctx context.Context, h uint64, newEpoch session.Epoch) int {
	c.recoveryMu.Lock()
	defer c.recoveryMu.Unlock()

	entry, ok := c.handles.Lookup(h)
	if !ok {
		return -int(rfserrno.EBADF)
	}

	// Another goroutine may have already recovered this handle while we
	// waited for the lock.
	if entry.Epoch == newEpoch {
		return 0
	}

	openReply, err := c.rpc.Open(ctx, &rfsproto.OpenRequest{Path: entry.Path, Flags: entry.Flags}, grpc.WaitForReady(true))
	if code := status.Code(err); code != codes.OK {
		return -int(transportErrno(err))
	}
	if openReply.Err != 0 {
		return -int(openReply.Err)
	}

	entry.ServerHandle = openReply.Handle
	entry.Epoch = session.Epoch(openReply.Epoch)
	c.handles.Update(h, entry)

	for _, w := range c.journal.Pending(h) {
		req := &rfsproto.WriteRequest{Handle: entry.ServerHandle, Epoch: uint64(entry.Epoch), Offset: w.Offset, Data: w.Data}
		reply, werr := c.rpc.Write(ctx, req, grpc.WaitForReady(true))
		if code := status.Code(werr); code != codes.OK {
			return -int(transportErrno(werr))
		}
		if reply.Err != 0 {
			return -int(reply.Err)
		}
	}

	return 0
}

// transportErrno maps a gRPC transport-level failure to the errno the
// facade surfaces to its caller. There is no POSIX errno for "the
// network is unreachable", so this collapses every non-OK status down
// to EIO, the same fallback rfserrno.FromError uses locally.
func transportErrno(err error) rfserrno.Errno {
	if err == nil {
		return 0
	}
	return rfserrno.EIO
}
