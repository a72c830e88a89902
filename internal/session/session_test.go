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

package session

import (
	"testing"
	"time"

	"github.com/jacobsa/timeutil"
)

func TestCurrentMatchesSeedTime(t *testing.T) {
	clock := &timeutil.SimulatedClock{}
	clock.SetTime(time.Unix(1234, 0))

	a := New(clock)
	if a.Current() != Epoch(1234) {
		t.Errorf("Current() = %v, want 1234", a.Current())
	}
}

func TestCheckAcceptsCurrentEpoch(t *testing.T) {
	clock := &timeutil.SimulatedClock{}
	clock.SetTime(time.Unix(1, 0))

	a := New(clock)
	if !a.Check(a.Current()) {
		t.Errorf("Check(Current()) = false, want true")
	}
}

func TestCheckRejectsStaleEpoch(t *testing.T) {
	clock := &timeutil.SimulatedClock{}
	clock.SetTime(time.Unix(1, 0))
	a := New(clock)

	if a.Check(Epoch(999999)) {
		t.Errorf("Check(stale epoch) = true, want false")
	}
}

func TestStampOrCrashAcceptsCurrentEpochWithoutCallingFill(t *testing.T) {
	clock := &timeutil.SimulatedClock{}
	clock.SetTime(time.Unix(1, 0))
	a := New(clock)

	filled := false
	ok := a.StampOrCrash(a.Current(), func(Epoch) { filled = true })
	if !ok {
		t.Errorf("StampOrCrash(Current()) = false, want true")
	}
	if filled {
		t.Errorf("fill was called on a current epoch, want untouched")
	}
}

func TestStampOrCrashFillsCurrentEpochOnMismatch(t *testing.T) {
	clock := &timeutil.SimulatedClock{}
	clock.SetTime(time.Unix(42, 0))
	a := New(clock)

	var got Epoch
	ok := a.StampOrCrash(Epoch(999999), func(newEpoch Epoch) { got = newEpoch })
	if ok {
		t.Errorf("StampOrCrash(stale) = true, want false")
	}
	if got != a.Current() {
		t.Errorf("fill got %v, want %v", got, a.Current())
	}
}
