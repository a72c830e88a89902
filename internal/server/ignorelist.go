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

// ignoreList names paths for which getattr returns a benign zeroed
// result without touching disk, suppressing desktop-environment probing
// (spec.md §4.3, P7). It is hardcoded; whether it should be
// configurable is an open question the spec leaves unresolved.
var ignoreList = map[string]bool{
	"/.Trash":           true,
	"/.Trash-1000":      true,
	"/.xdg-volume-info": true,
	"/autorun.inf":      true,
}
