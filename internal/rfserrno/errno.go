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

// Package rfserrno models the POSIX error numbers that travel as plain
// int32s on the wire, the way fuse.Errno wraps bazilfuse.Errno for the
// jacobsa/fuse FileSystem interface.
package rfserrno

import "syscall"

// Errno is a POSIX error number. Zero means success.
type Errno syscall.Errno

const (
	EIO       = Errno(syscall.EIO)
	ENOENT    = Errno(syscall.ENOENT)
	ENOSYS    = Errno(syscall.ENOSYS)
	ENOTEMPTY = Errno(syscall.ENOTEMPTY)
	EBADF     = Errno(syscall.EBADF)
	EMFILE    = Errno(syscall.EMFILE)
	EEXIST    = Errno(syscall.EEXIST)
)

// FromError converts a Go error, typically returned by an os or syscall
// call against the server's local filesystem, into the errno that should
// travel on the wire. Non-errno errors (should not normally happen for
// operations that only ever touch the local filesystem) are mapped to EIO.
func FromError(err error) Errno {
	if err == nil {
		return 0
	}

	if errno, ok := err.(syscall.Errno); ok {
		return Errno(errno)
	}

	// Unwrap *os.PathError / *os.LinkError, which os package calls return.
	type unwrapper interface {
		Unwrap() error
	}
	for u, ok := err.(unwrapper); ok; u, ok = err.(unwrapper) {
		err = u.Unwrap()
		if errno, ok := err.(syscall.Errno); ok {
			return Errno(errno)
		}
	}

	return EIO
}

// ErrOutOfHandles is the client-local error (§4.5, §7(d)) signaled when
// the handle table's allocator cannot find a free id. It never travels
// on the wire; the client surfaces it to the bridge directly.
var ErrOutOfHandles = Errno(syscall.EMFILE)
