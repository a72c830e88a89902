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

package server

import (
	"os"

	fallocate "github.com/detailyang/go-fallocate"
)

// preallocReserveBytes is how much space Create reserves up front when
// the server is started with -prealloc. Chosen to absorb a handful of
// writes without a second allocation on common workloads; not derived
// from any measurement.
const preallocReserveBytes = 1 << 20 // 1 MiB

// preallocate reserves n bytes for f using the platform's native
// fallocate-style syscall, falling back to whatever go-fallocate itself
// falls back to on platforms without one. Best-effort: failures are
// reported to the caller but never fail the surrounding Create call.
func preallocate(f *os.File, n int64) error {
	return fallocate.Fallocate(f, 0, n)
}
