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

// Package session owns the server's epoch: a tag that identifies one
// server process lifetime and lets a client tell a fresh process apart
// from the one whose handles it's still holding (spec.md I1, §4.4).
package session

import (
	"github.com/jacobsa/timeutil"
)

// Epoch is a 64-bit tag stamped on every open/create reply and checked
// on every handle-bearing request thereafter.
type Epoch uint64

// Authority hands out and validates the epoch for one server process
// lifetime. It has no mutable state after construction: the epoch never
// changes for the life of the process (I1), so there is nothing to
// guard with a mutex.
type Authority struct {
	epoch Epoch
}

// New seeds an Authority's epoch from clock's current wall-clock time,
// in seconds, per I1 ("seeded from wall-clock seconds"). Two Authorities
// constructed in the same process lifetime never exist; a fresh process
// always calls New exactly once at startup.
func New(clock timeutil.Clock) *Authority {
	return &Authority{epoch: Epoch(clock.Now().Unix())}
}

// Current returns the epoch this process has published.
func (a *Authority) Current() Epoch {
	return a.epoch
}

// Check reports whether req is the epoch this Authority is currently
// publishing. A request whose epoch doesn't match was issued against a
// server process that no longer exists (or, in principle, not yet
// exists): the dispatcher must skip the handler body and reply with
// SERVER_CRASH_CODE plus Current() (spec.md §4.4).
func (a *Authority) Check(req Epoch) bool {
	return req == a.epoch
}

// StampOrCrash is the one-line guard every handle-bearing dispatcher
// method opens with (spec.md §4.4). If req is current it returns true
// and the caller proceeds normally. Otherwise it invokes fill with the
// current epoch, so the caller can stamp its own reply type's
// SERVER_CRASH_CODE/NewSessionId fields, and returns false.
func (a *Authority) StampOrCrash(req Epoch, fill func(newEpoch Epoch)) bool {
	if req == a.epoch {
		return true
	}
	fill(a.epoch)
	return false
}
