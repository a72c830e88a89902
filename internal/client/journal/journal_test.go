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

package journal

import (
	"bytes"
	"testing"
)

func TestPendingEmpty(t *testing.T) {
	j := New()
	if got := j.Pending(1); got != nil {
		t.Errorf("Pending on fresh journal = %v, want nil", got)
	}
}

func TestAppendOrdersByInsertion(t *testing.T) {
	j := New()

	j.Append(1, 0, []byte("aaa"))
	j.Append(1, 3, []byte("bbb"))

	got := j.Pending(1)
	if len(got) != 2 {
		t.Fatalf("Pending = %v, want 2 entries", got)
	}
	if got[0].Offset != 0 || !bytes.Equal(got[0].Data, []byte("aaa")) {
		t.Errorf("entry 0 = %+v", got[0])
	}
	if got[1].Offset != 3 || !bytes.Equal(got[1].Data, []byte("bbb")) {
		t.Errorf("entry 1 = %+v", got[1])
	}
}

func TestAppendCopiesData(t *testing.T) {
	j := New()

	buf := []byte("original")
	j.Append(1, 0, buf)
	buf[0] = 'X'

	got := j.Pending(1)
	if !bytes.Equal(got[0].Data, []byte("original")) {
		t.Errorf("journal entry mutated by caller's buffer: %s", got[0].Data)
	}
}

func TestClearRemovesHandle(t *testing.T) {
	j := New()

	j.Append(1, 0, []byte("x"))
	j.Clear(1)

	if got := j.Pending(1); got != nil {
		t.Errorf("Pending after Clear = %v, want nil", got)
	}
}

func TestHandlesOnlyListsNonEmpty(t *testing.T) {
	j := New()

	j.Append(1, 0, []byte("x"))
	j.Append(2, 0, []byte("y"))
	j.Clear(2)

	got := map[uint64]bool{}
	for _, h := range j.Handles() {
		got[h] = true
	}
	if !got[1] || got[2] {
		t.Errorf("Handles() = %v, want only [1]", j.Handles())
	}
}
