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

// Package server implements the server-side half of the netfuse
// protocol: the path translator, the request dispatcher, and the
// session check that sits in front of every handle-bearing method
// (spec.md §4.3, §4.4).
//
// The dispatch shape — one method per op, each responsible for filling
// out its own reply — is the direct generalization of
// fuseutil.FileSystemServer's per-op dispatch in jacobsa/fuse, adapted
// from an in-kernel inode protocol to a path-addressed RPC one.
package server

import (
	"context"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/jacobsa/timeutil"

	"github.com/netfuse/netfuse/internal/rfserrno"
	"github.com/netfuse/netfuse/internal/server/pathfs"
	"github.com/netfuse/netfuse/internal/session"
	"github.com/netfuse/netfuse/rfsproto"
)

// openFile is a server-side open file: a live descriptor plus the
// epoch that was current when it was opened.
type openFile struct {
	f     *os.File
	epoch session.Epoch
}

// Handler implements rfsproto.RemoteFSServer against a fixed local
// directory subtree.
type Handler struct {
	rfsproto.UnimplementedRemoteFSServer

	root        string
	authority   *session.Authority
	preallocate bool
	logger      logger

	mu         sync.Mutex
	nextHandle uint64
	openFiles  map[uint64]*openFile
}

// logger is the minimal seam Handler needs; *log.Logger satisfies it.
// Kept as an interface, following jacobsa/fuse's own debug.go pattern of
// a single logging seam rather than scattering fmt.Printf calls, but
// owned per-Handler instead of a package-level global (Design Notes:
// no process-wide singletons).
type logger interface {
	Printf(format string, v ...interface{})
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewHandler constructs a Handler rooted at root, owning a fresh
// session.Authority seeded from clock.
func NewHandler(root string, clock timeutil.Clock, preallocate bool) *Handler {
	return &Handler{
		root:        root,
		authority:   session.New(clock),
		preallocate: preallocate,
		logger:      discardLogger{},
		openFiles:   make(map[uint64]*openFile),
	}
}

// SetLogger installs a logger for diagnostic output. Not required for
// correct operation.
func (h *Handler) SetLogger(l logger) {
	if l == nil {
		l = discardLogger{}
	}
	h.logger = l
}

////////////////////////////////////////////////////////////////////////
// Path-addressed, session-free operations
////////////////////////////////////////////////////////////////////////

func (h *Handler) Getattr(ctx context.Context, req *rfsproto.GetattrRequest) (*rfsproto.GetattrReply, error) {
	if ignoreList[req.Path] {
		return &rfsproto.GetattrReply{Attr: &rfsproto.Attr{}, Err: 0}, nil
	}

	full := pathfs.Translate(h.root, req.Path)

	var st syscall.Stat_t
	if err := syscall.Stat(full, &st); err != nil {
		return &rfsproto.GetattrReply{Attr: &rfsproto.Attr{}, Err: int32(rfserrno.FromError(err))}, nil
	}

	return &rfsproto.GetattrReply{Attr: attrFromStat(&st), Err: 0}, nil
}

func (h *Handler) Readdir(ctx context.Context, req *rfsproto.ReaddirRequest) (*rfsproto.ReaddirReply, error) {
	full := pathfs.Translate(h.root, req.Path)

	entries, err := os.ReadDir(full)
	if err != nil {
		return &rfsproto.ReaddirReply{
			Entries: []*rfsproto.DirEntry{{Err: int32(rfserrno.FromError(err))}},
		}, nil
	}

	// Build the whole listing in one shot, per I5/§4.3: the final item
	// always carries the result code and no payload.
	out := make([]*rfsproto.DirEntry, 0, len(entries)+1)
	for i, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		var ino uint64
		if sys, ok := info.Sys().(*syscall.Stat_t); ok {
			ino = sys.Ino
		}

		out = append(out, &rfsproto.DirEntry{
			Ino:    ino,
			Offset: int64(i + 1),
			Type:   directoryEntryType(info.Mode()),
			Name:   e.Name(),
		})
	}
	out = append(out, &rfsproto.DirEntry{Err: 0})

	return &rfsproto.ReaddirReply{Entries: out}, nil
}

func (h *Handler) Mkdir(ctx context.Context, req *rfsproto.MkdirRequest) (*rfsproto.MkdirReply, error) {
	full := pathfs.Translate(h.root, req.Path)
	err := os.Mkdir(full, os.FileMode(req.Mode))
	return &rfsproto.MkdirReply{Err: int32(rfserrno.FromError(err))}, nil
}

func (h *Handler) Rmdir(ctx context.Context, req *rfsproto.RmdirRequest) (*rfsproto.RmdirReply, error) {
	full := pathfs.Translate(h.root, req.Path)
	err := os.Remove(full)
	return &rfsproto.RmdirReply{Err: int32(rfserrno.FromError(err))}, nil
}

func (h *Handler) Unlink(ctx context.Context, req *rfsproto.UnlinkRequest) (*rfsproto.UnlinkReply, error) {
	full := pathfs.Translate(h.root, req.Path)
	err := os.Remove(full)
	return &rfsproto.UnlinkReply{Err: int32(rfserrno.FromError(err))}, nil
}

func (h *Handler) Rename(ctx context.Context, req *rfsproto.RenameRequest) (*rfsproto.RenameReply, error) {
	from := pathfs.Translate(h.root, req.From)
	to := pathfs.Translate(h.root, req.To)
	err := os.Rename(from, to)
	return &rfsproto.RenameReply{Err: int32(rfserrno.FromError(err))}, nil
}

func (h *Handler) Utimens(ctx context.Context, req *rfsproto.UtimensRequest) (*rfsproto.UtimensReply, error) {
	full := pathfs.Translate(h.root, req.Path)
	atime := timeFromSpec(req.AtimeSec, req.AtimeNsec)
	mtime := timeFromSpec(req.MtimeSec, req.MtimeNsec)
	err := os.Chtimes(full, atime, mtime)
	return &rfsproto.UtimensReply{Err: int32(rfserrno.FromError(err))}, nil
}

func (h *Handler) Statfs(ctx context.Context, req *rfsproto.StatfsRequest) (*rfsproto.StatfsReply, error) {
	full := pathfs.Translate(h.root, req.Path)

	var st syscall.Statfs_t
	if err := syscall.Statfs(full, &st); err != nil {
		return &rfsproto.StatfsReply{Err: int32(rfserrno.FromError(err))}, nil
	}

	return &rfsproto.StatfsReply{
		Bsize:   uint64(st.Bsize),
		Blocks:  st.Blocks,
		Bfree:   st.Bfree,
		Bavail:  st.Bavail,
		Files:   st.Files,
		Ffree:   st.Ffree,
		Namelen: uint32(st.Namelen),
		Err:     0,
	}, nil
}

////////////////////////////////////////////////////////////////////////
// Handle-bearing operations
////////////////////////////////////////////////////////////////////////

func (h *Handler) Open(ctx context.Context, req *rfsproto.OpenRequest) (*rfsproto.OpenReply, error) {
	full := pathfs.Translate(h.root, req.Path)

	f, err := os.OpenFile(full, int(req.Flags), 0)
	if err != nil {
		return &rfsproto.OpenReply{Err: int32(rfserrno.FromError(err))}, nil
	}

	handle := h.registerOpenFile(f)
	return &rfsproto.OpenReply{Handle: handle, Epoch: uint64(h.authority.Current()), Err: 0}, nil
}

func (h *Handler) Create(ctx context.Context, req *rfsproto.CreateRequest) (*rfsproto.CreateReply, error) {
	full := pathfs.Translate(h.root, req.Path)

	flags := int(req.Flags) | os.O_CREATE
	f, err := os.OpenFile(full, flags, os.FileMode(req.Mode))
	if err != nil {
		return &rfsproto.CreateReply{Err: int32(rfserrno.FromError(err))}, nil
	}

	if h.preallocate {
		h.tryPreallocate(f)
	}

	handle := h.registerOpenFile(f)
	return &rfsproto.CreateReply{Handle: handle, Epoch: uint64(h.authority.Current()), Err: 0}, nil
}

func (h *Handler) Read(ctx context.Context, req *rfsproto.ReadRequest) (*rfsproto.ReadReply, error) {
	reply := &rfsproto.ReadReply{}
	if !h.authority.StampOrCrash(session.Epoch(req.Epoch), func(newEpoch session.Epoch) {
		reply.Err, reply.NewSessionId = rfsproto.ServerCrashCode, uint64(newEpoch)
	}) {
		return reply, nil
	}

	of, ok := h.lookupOpenFile(req.Handle)
	if !ok {
		return &rfsproto.ReadReply{Err: int32(rfserrno.EBADF)}, nil
	}

	// The buffer is allocated at the caller's requested count, but the
	// reply carries only the bytes actually read (buf[:n]): resolves the
	// Open Question in spec.md §9 conservatively, so no trailing garbage
	// leaves this process.
	buf := make([]byte, req.Count)
	n, err := of.f.ReadAt(buf, req.Offset)
	if err != nil && n == 0 {
		return &rfsproto.ReadReply{Err: int32(rfserrno.FromError(err))}, nil
	}

	return &rfsproto.ReadReply{Data: buf[:n], BytesRead: int32(n), Err: 0}, nil
}

func (h *Handler) Write(ctx context.Context, req *rfsproto.WriteRequest) (*rfsproto.WriteReply, error) {
	reply := &rfsproto.WriteReply{}
	if !h.authority.StampOrCrash(session.Epoch(req.Epoch), func(newEpoch session.Epoch) {
		reply.Err, reply.NewSessionId = rfsproto.ServerCrashCode, uint64(newEpoch)
	}) {
		return reply, nil
	}

	of, ok := h.lookupOpenFile(req.Handle)
	if !ok {
		return &rfsproto.WriteReply{Err: int32(rfserrno.EBADF)}, nil
	}

	n, err := of.f.WriteAt(req.Data, req.Offset)
	if err != nil {
		return &rfsproto.WriteReply{Err: int32(rfserrno.FromError(err))}, nil
	}

	if err := of.f.Sync(); err != nil {
		return &rfsproto.WriteReply{Err: int32(rfserrno.FromError(err))}, nil
	}

	return &rfsproto.WriteReply{BytesWritten: int32(n), Err: 0}, nil
}

func (h *Handler) CommitWrite(ctx context.Context, req *rfsproto.CommitWriteRequest) (*rfsproto.CommitWriteReply, error) {
	reply := &rfsproto.CommitWriteReply{}
	if !h.authority.StampOrCrash(session.Epoch(req.Epoch), func(newEpoch session.Epoch) {
		reply.Err, reply.NewSessionId = rfsproto.ServerCrashCode, uint64(newEpoch)
	}) {
		return reply, nil
	}

	of, ok := h.lookupOpenFile(req.Handle)
	if !ok {
		return &rfsproto.CommitWriteReply{Err: int32(rfserrno.EBADF)}, nil
	}

	// A no-op-returning-success on a handle with nothing pending, per
	// the Open Question resolution: fsync(2) on a clean descriptor
	// simply succeeds.
	err := of.f.Sync()
	return &rfsproto.CommitWriteReply{Err: int32(rfserrno.FromError(err))}, nil
}

func (h *Handler) Release(ctx context.Context, req *rfsproto.ReleaseRequest) (*rfsproto.ReleaseReply, error) {
	reply := &rfsproto.ReleaseReply{}
	if !h.authority.StampOrCrash(session.Epoch(req.Epoch), func(newEpoch session.Epoch) {
		reply.Err, reply.NewSessionId = rfsproto.ServerCrashCode, uint64(newEpoch)
	}) {
		return reply, nil
	}

	of, ok := h.takeOpenFile(req.Handle)
	if !ok {
		return &rfsproto.ReleaseReply{Err: int32(rfserrno.EBADF)}, nil
	}

	err := of.f.Close()
	return &rfsproto.ReleaseReply{Err: int32(rfserrno.FromError(err))}, nil
}

////////////////////////////////////////////////////////////////////////
// Open file table
////////////////////////////////////////////////////////////////////////

func (h *Handler) registerOpenFile(f *os.File) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextHandle++
	handle := h.nextHandle
	h.openFiles[handle] = &openFile{f: f, epoch: h.authority.Current()}
	return handle
}

func (h *Handler) lookupOpenFile(handle uint64) (*openFile, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	of, ok := h.openFiles[handle]
	return of, ok
}

func (h *Handler) takeOpenFile(handle uint64) (*openFile, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	of, ok := h.openFiles[handle]
	if ok {
		delete(h.openFiles, handle)
	}
	return of, ok
}

func (h *Handler) tryPreallocate(f *os.File) {
	if err := preallocate(f, preallocReserveBytes); err != nil {
		h.logger.Printf("preallocate %s: %v", f.Name(), err)
	}
}

////////////////////////////////////////////////////////////////////////
// Conversions
////////////////////////////////////////////////////////////////////////

func attrFromStat(st *syscall.Stat_t) *rfsproto.Attr {
	return &rfsproto.Attr{
		Dev:      uint64(st.Dev),
		Ino:      st.Ino,
		Nlink:    uint32(st.Nlink),
		Mode:     st.Mode,
		Uid:      st.Uid,
		Gid:      st.Gid,
		Rdev:     uint64(st.Rdev),
		Size:     st.Size,
		Blksize:  int64(st.Blksize),
		Blocks:   st.Blocks,
		AtimeSec: int64(st.Atim.Sec),
		MtimeSec: int64(st.Mtim.Sec),
		CtimeSec: int64(st.Ctim.Sec),
	}
}

func timeFromSpec(sec, nsec int64) time.Time {
	return time.Unix(sec, nsec)
}
