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

// Package pathfs maps a client-visible path to a server-local absolute
// path (spec.md §4.2).
package pathfs

// Translate prefixes clientPath with root by literal string
// concatenation. It does not call filepath.Clean or resolve "..": a
// client that sends a path escaping root will reach outside it. This is
// a documented non-goal of the system (spec.md §1), not an oversight —
// do not "fix" it into a containment check without revisiting the spec.
func Translate(root, clientPath string) string {
	return root + clientPath
}
