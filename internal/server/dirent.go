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

import "os"

// One-byte dirent type codes, the same small vocabulary jacobsa/fuse's
// fuseutil package exposes as DT_File / DT_Directory for its Dirent
// type. spec.md §4.9 shifts this left 12 bits into the bridge's stat
// Mode field (the standard IFTODT/DTTOIF convention).
const (
	dtUnknown = 0
	dtDir     = 4
	dtReg     = 8
)

func directoryEntryType(mode os.FileMode) uint32 {
	switch {
	case mode.IsDir():
		return dtDir
	case mode.IsRegular():
		return dtReg
	default:
		return dtUnknown
	}
}
