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

// Package bridge adapts a client.Client to cgofuse's
// fuse.FileSystemInterface, so a mounted directory's every POSIX
// operation becomes a call through the facade. This is the
// "bridge adapter" spec.md names; it owns no filesystem state of its
// own beyond the client it was built with.
package bridge

import (
	"context"

	"github.com/winfsp/cgofuse/fuse"

	"github.com/netfuse/netfuse/internal/client"
)

// FS implements fuse.FileSystemInterface by delegating every call to a
// *client.Client. It embeds fuse.FileSystemBase so unimplemented
// optional methods (Chmod, Chown, Link, Symlink, Readlink, ...) fall
// back to ENOSYS, the same role
// fuseutil.NotImplementedFileSystem plays for the jacobsa/fuse
// interface.
type FS struct {
	fuse.FileSystemBase

	c *client.Client
}

// New wraps c as a mountable filesystem.
func New(c *client.Client) *FS {
	return &FS{c: c}
}

func (f *FS) Getattr(path string, stat *fuse.Stat_t, fh uint64) int {
	attr, errc := f.c.Getattr(context.Background(), path)
	if errc != 0 {
		return errc
	}

	stat.Dev = attr.Dev
	stat.Ino = attr.Ino
	stat.Mode = attr.Mode
	stat.Nlink = attr.Nlink
	stat.Uid = attr.Uid
	stat.Gid = attr.Gid
	stat.Rdev = attr.Rdev
	stat.Size = attr.Size
	stat.Blksize = attr.Blksize
	stat.Blocks = attr.Blocks
	// Only second-granularity timestamps cross the wire (spec.md
	// §4.1); the nanosecond components are always zero here.
	stat.Atim = fuse.Timespec{Sec: attr.AtimeSec}
	stat.Mtim = fuse.Timespec{Sec: attr.MtimeSec}
	stat.Ctim = fuse.Timespec{Sec: attr.CtimeSec}

	return 0
}

func (f *FS) Readdir(
	path string,
	fill func(name string, stat *fuse.Stat_t, ofst int64) bool,
	ofst int64,
	fh uint64) int {

	entries, errc := f.c.Readdir(context.Background(), path)
	if errc != 0 {
		return errc
	}

	for _, e := range entries {
		// Mode's high nibble carries the dirent type code, shifted
		// left 12 bits per §4.9 (the standard IFTODT/DTTOIF
		// convention); everything else about the entry is left zero,
		// same as the fill(".", nil, 0) pattern cgofuse itself uses.
		stat := &fuse.Stat_t{Mode: e.Type << 12}
		if !fill(e.Name, stat, 0) {
			break
		}
	}

	return 0
}

func (f *FS) Open(path string, flags int) (int, uint64) {
	h, errc := f.c.Open(context.Background(), path, int32(flags))
	return errc, h
}

func (f *FS) Create(path string, flags int, mode uint32) (int, uint64) {
	h, errc := f.c.Create(context.Background(), path, mode, int32(flags))
	return errc, h
}

func (f *FS) Read(path string, buff []byte, ofst int64, fh uint64) int {
	data, errc := f.c.Read(context.Background(), fh, ofst, int32(len(buff)))
	if errc != 0 {
		return errc
	}
	return copy(buff, data)
}

func (f *FS) Write(path string, buff []byte, ofst int64, fh uint64) int {
	n, errc := f.c.Write(context.Background(), fh, ofst, buff)
	if errc != 0 {
		return errc
	}
	return n
}

func (f *FS) Flush(path string, fh uint64) int {
	return f.c.CommitWrite(context.Background(), fh)
}

func (f *FS) Fsync(path string, datasync bool, fh uint64) int {
	return f.c.CommitWrite(context.Background(), fh)
}

func (f *FS) Release(path string, fh uint64) int {
	return f.c.Release(context.Background(), fh)
}

func (f *FS) Mkdir(path string, mode uint32) int {
	return f.c.Mkdir(context.Background(), path, mode)
}

func (f *FS) Rmdir(path string) int {
	return f.c.Rmdir(context.Background(), path)
}

func (f *FS) Unlink(path string) int {
	return f.c.Unlink(context.Background(), path)
}

func (f *FS) Rename(oldpath string, newpath string) int {
	return f.c.Rename(context.Background(), oldpath, newpath)
}

func (f *FS) Utimens(path string, tmsp []fuse.Timespec) int {
	var atimeSec, atimeNsec, mtimeSec, mtimeNsec int64
	if len(tmsp) > 0 {
		atimeSec, atimeNsec = tmsp[0].Sec, tmsp[0].Nsec
	}
	if len(tmsp) > 1 {
		mtimeSec, mtimeNsec = tmsp[1].Sec, tmsp[1].Nsec
	}
	return f.c.Utimens(context.Background(), path, atimeSec, atimeNsec, mtimeSec, mtimeNsec)
}

func (f *FS) Statfs(path string, stat *fuse.Statfs_t) int {
	reply, errc := f.c.Statfs(context.Background(), path)
	if errc != 0 {
		return errc
	}

	stat.Bsize = reply.Bsize
	stat.Blocks = reply.Blocks
	stat.Bfree = reply.Bfree
	stat.Bavail = reply.Bavail
	stat.Files = reply.Files
	stat.Ffree = reply.Ffree
	stat.Namemax = reply.Namelen

	return 0
}
