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

package rfserrno

import (
	"fmt"
	"os"
	"syscall"
	"testing"
)

func TestFromErrorNil(t *testing.T) {
	if got := FromError(nil); got != 0 {
		t.Errorf("FromError(nil) = %v, want 0", got)
	}
}

func TestFromErrorBareErrno(t *testing.T) {
	if got := FromError(syscall.ENOENT); got != ENOENT {
		t.Errorf("FromError(ENOENT) = %v, want ENOENT", got)
	}
}

func TestFromErrorWrappedPathError(t *testing.T) {
	wrapped := &os.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}
	if got := FromError(wrapped); got != ENOENT {
		t.Errorf("FromError(PathError) = %v, want ENOENT", got)
	}
}

func TestFromErrorUnknownFallsBackToEIO(t *testing.T) {
	if got := FromError(fmt.Errorf("something else")); got != EIO {
		t.Errorf("FromError(plain error) = %v, want EIO", got)
	}
}
