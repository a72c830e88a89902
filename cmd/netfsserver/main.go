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

// Command netfsserver exports a local directory over the netfuse wire
// protocol.
package main

import (
	"flag"
	"log"
	"net"
	"os"

	"github.com/jacobsa/timeutil"
	"google.golang.org/grpc"

	"github.com/netfuse/netfuse/internal/server"
	"github.com/netfuse/netfuse/rfsproto"
)

var (
	fListen   = flag.String("listen", "127.0.0.1:8080", "Address to listen on.")
	fRoot     = flag.String("root", "/tmp/nfs", "Local directory to export.")
	fPrealloc = flag.Bool("prealloc", false, "Preallocate disk space for newly created files.")
	fDebug    = flag.Bool("debug", false, "Log every RPC to stderr.")
)

func main() {
	flag.Parse()

	if fi, err := os.Stat(*fRoot); err != nil || !fi.IsDir() {
		log.Fatalf("-root %q is not a directory: %v", *fRoot, err)
	}

	lis, err := net.Listen("tcp", *fListen)
	if err != nil {
		log.Fatalf("net.Listen(%q): %v", *fListen, err)
	}

	handler := server.NewHandler(*fRoot, timeutil.RealClock(), *fPrealloc)
	if *fDebug {
		handler.SetLogger(log.New(os.Stderr, "netfsserver: ", log.LstdFlags))
	}

	s := grpc.NewServer()
	rfsproto.RegisterRemoteFSServer(s, handler)

	log.Printf("netfsserver: exporting %s on %s", *fRoot, *fListen)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("Serve: %v", err)
	}
}
