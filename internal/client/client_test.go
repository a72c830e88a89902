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

package client

import (
	"context"
	"sync"
	"testing"

	"google.golang.org/grpc"

	"github.com/netfuse/netfuse/internal/client/handle"
	"github.com/netfuse/netfuse/internal/client/journal"
	"github.com/netfuse/netfuse/rfsproto"
)

// fakeRPC is a hand-rolled double for rfsproto.RemoteFSClient, the same
// role a generated gRPC mock would play; kept here rather than reached
// for a mocking library since the interface is small and the behavior
// under test (crash/retry/replay) needs precise scripted sequences.
type fakeRPC struct {
	rfsproto.RemoteFSClient

	mu sync.Mutex

	epoch       uint64
	openCount   int
	writes      []rfsproto.WriteRequest
	crashOnce   bool
	crashedOnce bool
}

func (f *fakeRPC) Open(ctx context.Context, in *rfsproto.OpenRequest, opts ...grpc.CallOption) (*rfsproto.OpenReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openCount++
	return &rfsproto.OpenReply{Handle: uint64(100 + f.openCount), Epoch: f.epoch}, nil
}

func (f *fakeRPC) Write(ctx context.Context, in *rfsproto.WriteRequest, opts ...grpc.CallOption) (*rfsproto.WriteReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.crashOnce && !f.crashedOnce {
		f.crashedOnce = true
		f.epoch++
		return &rfsproto.WriteReply{Err: rfsproto.ServerCrashCode, NewSessionId: f.epoch}, nil
	}

	f.writes = append(f.writes, *in)
	return &rfsproto.WriteReply{BytesWritten: int32(len(in.Data))}, nil
}

func (f *fakeRPC) CommitWrite(ctx context.Context, in *rfsproto.CommitWriteRequest, opts ...grpc.CallOption) (*rfsproto.CommitWriteReply, error) {
	return &rfsproto.CommitWriteReply{}, nil
}

func newTestClient(rpc rfsproto.RemoteFSClient) *Client {
	return &Client{
		rpc:     rpc,
		handles: handle.New(),
		journal: journal.New(),
	}
}

func TestWriteSucceedsWithoutCrash(t *testing.T) {
	fake := &fakeRPC{}
	c := newTestClient(fake)

	h, errc := c.Open(context.Background(), "/f", 0)
	if errc != 0 {
		t.Fatalf("Open: %d", errc)
	}

	n, errc := c.Write(context.Background(), h, 0, []byte("hello"))
	if errc != 0 {
		t.Fatalf("Write: %d", errc)
	}
	if n != 5 {
		t.Errorf("Write returned %d bytes, want 5", n)
	}
	if len(c.journal.Pending(h)) != 1 {
		t.Errorf("expected one journaled write, got %d", len(c.journal.Pending(h)))
	}
}

func TestWriteRecoversFromServerCrash(t *testing.T) {
	fake := &fakeRPC{crashOnce: true}
	c := newTestClient(fake)

	h, errc := c.Open(context.Background(), "/f", 0)
	if errc != 0 {
		t.Fatalf("Open: %d", errc)
	}

	n, errc := c.Write(context.Background(), h, 0, []byte("hello"))
	if errc != 0 {
		t.Fatalf("Write after crash: %d", errc)
	}
	if n != 5 {
		t.Errorf("Write returned %d bytes, want 5", n)
	}

	entry, ok := c.handles.Lookup(h)
	if !ok {
		t.Fatalf("handle %d missing after recovery", h)
	}
	if entry.Epoch != 1 {
		t.Errorf("entry.Epoch = %d, want 1 after one crash", entry.Epoch)
	}
	if fake.openCount != 2 {
		t.Errorf("openCount = %d, want 2 (initial open + reopen on recovery)", fake.openCount)
	}
}

func TestCommitWriteClearsJournal(t *testing.T) {
	fake := &fakeRPC{}
	c := newTestClient(fake)

	h, _ := c.Open(context.Background(), "/f", 0)
	c.Write(context.Background(), h, 0, []byte("x"))

	if errc := c.CommitWrite(context.Background(), h); errc != 0 {
		t.Fatalf("CommitWrite: %d", errc)
	}
	if got := c.journal.Pending(h); got != nil {
		t.Errorf("journal not cleared after CommitWrite: %v", got)
	}
}

func TestReadOnUnknownHandleIsEBADF(t *testing.T) {
	c := newTestClient(&fakeRPC{})
	if _, errc := c.Read(context.Background(), 999, 0, 10); errc == 0 {
		t.Errorf("Read on unallocated handle succeeded, want EBADF")
	}
}
