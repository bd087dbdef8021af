// Copyright 2026 The gVisor Authors.
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

// Package cmd holds implementations of the cerealctl commands.
package cmd

import (
	"flag"
	"io"

	"github.com/google/subcommands"
	"goldfish.dev/cereal/cerealctl/config"
	"goldfish.dev/cereal/pkg/capture"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/vk"
)

// getConfig returns the configuration passed to Execute.
func getConfig(args []any) *config.Config {
	return args[0].(*config.Config)
}

// teeConn copies everything written to a connection into a capture.
type teeConn struct {
	io.Reader
	io.Writer
}

func tee(conn io.ReadWriter, w io.Writer) io.ReadWriter {
	return teeConn{Reader: conn, Writer: io.MultiWriter(conn, w)}
}

// playSample runs the sample command sequence over conn, recording the
// guest side into path when it is not empty.
func playSample(conn io.ReadWriter, path string, conf *config.Config, meta map[string]string) error {
	var rec *capture.Writer
	if path != "" {
		var err error
		if rec, err = capture.Create(path, meta, conf.Compress); err != nil {
			return err
		}
		conn = tee(conn, rec)
	}
	err := vk.Play(command.NewClient(conn, vk.Commands), vk.SampleCalls())
	if rec != nil {
		if cerr := rec.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// usage reports a usage error for f.
func usage(f *flag.FlagSet) subcommands.ExitStatus {
	f.Usage()
	return subcommands.ExitUsageError
}
