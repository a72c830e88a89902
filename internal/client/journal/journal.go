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

// Package journal keeps, per open handle, the ordered list of writes
// the server has not yet acknowledged with a commit (spec.md §4.6, I3).
// When a server crash is detected mid-session, the client replays each
// handle's journal against the freshly reopened file before returning
// control to the caller, the same way a client of any at-least-once RPC
// system must re-drive requests whose outcome it never learned.
package journal

import (
	"github.com/jacobsa/syncutil"
)

// Entry is a single unacknowledged write.
type Entry struct {
	Offset int64
	Data   []byte
}

// Journal holds, for each handle, the writes issued since the last
// successful commit.
type Journal struct {
	mu syncutil.InvariantMutex

	entries map[uint64][]Entry // GUARDED_BY(mu)
}

// New returns an empty Journal.
func New() *Journal {
	j := &Journal{entries: make(map[uint64][]Entry)}
	j.mu = syncutil.NewInvariantMutex(j.checkInvariants)
	return j
}

func (j *Journal) checkInvariants() {
	for _, entries := range j.entries {
		if len(entries) == 0 {
			panic("journal.Journal: empty slice left behind for handle")
		}
	}
}

// Append records a write against h. The entry's Data is copied so the
// caller's buffer can be reused immediately.
func (j *Journal) Append(h uint64, offset int64, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries[h] = append(j.entries[h], Entry{Offset: offset, Data: cp})
}

// Pending returns the writes recorded for h, oldest first. The returned
// slice is a copy; mutating it does not affect the journal.
func (j *Journal) Pending(h uint64) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries := j.entries[h]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Clear discards every write recorded for h, normally after a
// successful CommitWrite.
func (j *Journal) Clear(h uint64) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.entries, h)
}

// Handles returns every handle with at least one pending write.
func (j *Journal) Handles() []uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]uint64, 0, len(j.entries))
	for h := range j.entries {
		out = append(out, h)
	}
	return out
}
