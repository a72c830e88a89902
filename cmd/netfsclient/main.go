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

// Command netfsclient mounts a directory exported by netfsserver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/grpc"

	"github.com/winfsp/cgofuse/fuse"

	"github.com/netfuse/netfuse/internal/bridge"
	"github.com/netfuse/netfuse/internal/client"
)

var (
	fRemote     = flag.String("r", "", "host:dir of the server to mount.")
	fMountPoint = flag.String("l", "", "Local mount point.")
	fPort       = flag.Int("p", 8080, "Server port.")
)

func main() {
	flag.Parse()

	if *fRemote == "" || *fMountPoint == "" {
		fmt.Fprintln(os.Stderr, "usage: netfsclient -r host:dir -l mountpoint [-p port]")
		os.Exit(1)
	}

	host, dir, err := splitRemote(*fRemote)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	addr := fmt.Sprintf("%s:%d", host, *fPort)
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		log.Fatalf("grpc.Dial(%q): %v", addr, err)
	}
	defer conn.Close()

	c := client.New(conn)
	fs := bridge.New(c)

	fmt.Printf("netfsclient: mounting %s:%s at %s\n", host, dir, *fMountPoint)

	fsHost := fuse.NewFileSystemHost(fs)
	if !fsHost.Mount(*fMountPoint, flag.Args()) {
		log.Fatalf("Mount(%q) failed", *fMountPoint)
	}
}

// splitRemote splits "host:dir" on the first colon, matching the
// client CLI's documented argument shape (spec.md §6).
func splitRemote(remote string) (host, dir string, err error) {
	i := strings.IndexByte(remote, ':')
	if i < 0 {
		return "", "", fmt.Errorf("invalid -r value %q: want host:dir", remote)
	}
	return remote[:i], remote[i+1:], nil
}
