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

package handle

import "testing"

func TestAllocStartsAtFirstHandle(t *testing.T) {
	tbl := New()

	h, err := tbl.Alloc(Entry{Path: "/a"})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if h != firstHandle {
		t.Errorf("got handle %d, want %d", h, firstHandle)
	}
}

func TestAllocIsUnique(t *testing.T) {
	tbl := New()

	seen := make(map[uint64]bool)
	for i := 0; i < 10; i++ {
		h, err := tbl.Alloc(Entry{Path: "/f"})
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
		if seen[h] {
			t.Fatalf("handle %d allocated twice", h)
		}
		seen[h] = true
	}
}

func TestFreeHandleIsReused(t *testing.T) {
	tbl := New()

	h1, err := tbl.Alloc(Entry{Path: "/a"})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	tbl.Free(h1)

	h2, err := tbl.Alloc(Entry{Path: "/b"})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if h2 != h1 {
		t.Errorf("got handle %d, want reused handle %d", h2, h1)
	}
}

func TestLookupMissing(t *testing.T) {
	tbl := New()

	if _, ok := tbl.Lookup(999); ok {
		t.Errorf("Lookup of never-allocated handle succeeded")
	}
}

func TestLookupRoundTrip(t *testing.T) {
	tbl := New()

	want := Entry{Path: "/a", Flags: 1, ServerHandle: 7, Epoch: 42}
	h, err := tbl.Alloc(want)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	got, ok := tbl.Lookup(h)
	if !ok {
		t.Fatalf("Lookup(%d) failed after Alloc", h)
	}
	if got != want {
		t.Errorf("Lookup(%d) = %+v, want %+v", h, got, want)
	}
}

func TestUpdateChangesEntry(t *testing.T) {
	tbl := New()

	h, err := tbl.Alloc(Entry{Path: "/a", ServerHandle: 1, Epoch: 1})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	tbl.Update(h, Entry{Path: "/a", ServerHandle: 2, Epoch: 2})

	got, ok := tbl.Lookup(h)
	if !ok {
		t.Fatalf("Lookup(%d) failed after Update", h)
	}
	if got.ServerHandle != 2 || got.Epoch != 2 {
		t.Errorf("Lookup(%d) = %+v, want ServerHandle=2 Epoch=2", h, got)
	}
}

func TestExhaustion(t *testing.T) {
	tbl := New()

	var last error
	for i := firstHandle; i < limitHandle+1; i++ {
		_, last = tbl.Alloc(Entry{Path: "/x"})
		if last != nil {
			break
		}
	}
	if last == nil {
		t.Fatalf("expected Alloc to fail once the range is exhausted")
	}
}

func TestHandlesListsAllocated(t *testing.T) {
	tbl := New()

	h1, _ := tbl.Alloc(Entry{Path: "/a"})
	h2, _ := tbl.Alloc(Entry{Path: "/b"})

	got := map[uint64]bool{}
	for _, h := range tbl.Handles() {
		got[h] = true
	}
	if !got[h1] || !got[h2] {
		t.Errorf("Handles() = %v, want both %d and %d", tbl.Handles(), h1, h2)
	}
}
