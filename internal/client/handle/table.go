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

// Package handle owns the client's mapping from the opaque handle the
// bridge hands back to its caller (spec.md §4.5) to everything the
// client needs to know to reissue a request against it: the server
// handle, the epoch it was opened under, the path, and the open flags.
//
// The allocator is the bounded-range generalization of
// samples/memfs/fs.go's inode allocator in jacobsa/fuse: a free list
// reused before minting a new id, so a busy mount doesn't monotonically
// grow its handle space.
package handle

import (
	"github.com/jacobsa/syncutil"

	"github.com/netfuse/netfuse/internal/rfserrno"
	"github.com/netfuse/netfuse/internal/session"
)

// First and last+1 user-facing handle values the table will hand out
// (I2). The range is deliberately small and low, clear of the FDs a
// typical process already has open, to make a leaked handle easy to
// spot in a debugger.
const (
	firstHandle = 100
	limitHandle = 1024
)

// Entry is everything the client remembers about one open file.
type Entry struct {
	Path         string
	Flags        int32
	ServerHandle uint64
	Epoch        session.Epoch
}

// Table is the client's open-file table, keyed by user-facing handle.
type Table struct {
	mu syncutil.InvariantMutex

	entries map[uint64]*Entry // GUARDED_BY(mu)
	free    []uint64          // GUARDED_BY(mu)
	next    uint64            // GUARDED_BY(mu)
}

// New returns an empty Table.
func New() *Table {
	t := &Table{
		entries: make(map[uint64]*Entry),
		next:    firstHandle,
	}
	t.mu = syncutil.NewInvariantMutex(t.checkInvariants)
	return t
}

// checkInvariants panics if t's bookkeeping is inconsistent. Registered
// with syncutil.NewInvariantMutex so every Lock/Unlock pair verifies it
// in builds compiled with the invariants tag.
func (t *Table) checkInvariants() {
	if t.next < firstHandle || t.next > limitHandle {
		panic("handle.Table: next out of range")
	}
	seen := make(map[uint64]bool, len(t.free))
	for _, h := range t.free {
		if seen[h] {
			panic("handle.Table: duplicate free handle")
		}
		seen[h] = true
		if _, busy := t.entries[h]; busy {
			panic("handle.Table: handle both free and allocated")
		}
	}
}

// Alloc reserves a new handle for e and returns it. It returns
// rfserrno.ErrOutOfHandles if the table's range [100, 1024) is
// exhausted — a client-local condition that never travels on the wire
// (spec.md §4.5, §7(d)).
func (t *Table) Alloc(e Entry) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var h uint64
	if n := len(t.free); n != 0 {
		h = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if t.next >= limitHandle {
			return 0, rfserrno.ErrOutOfHandles
		}
		h = t.next
		t.next++
	}

	entry := e
	t.entries[h] = &entry
	return h, nil
}

// Lookup returns the entry for h, if any.
func (t *Table) Lookup(h uint64) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[h]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Update replaces the entry stored for h, for operations (e.g.
// recovery's reopen) that change the server handle or epoch in place
// without changing the user-facing identity.
func (t *Table) Update(h uint64, e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[h]; ok {
		entry := e
		t.entries[h] = &entry
	}
}

// Free releases h back to the pool. Freeing an unallocated handle is a
// no-op.
func (t *Table) Free(h uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.entries[h]; !ok {
		return
	}
	delete(t.entries, h)
	t.free = append(t.free, h)
}

// Handles returns every currently-allocated handle, in no particular
// order.
func (t *Table) Handles() []uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]uint64, 0, len(t.entries))
	for h := range t.entries {
		out = append(out, h)
	}
	return out
}
