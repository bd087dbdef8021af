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

package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"goldfish.dev/cereal/cerealctl/cmd/util"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/pipe"
	"goldfish.dev/cereal/pkg/vk"
)

// Record implements subcommands.Command for the "record" command.
type Record struct{}

// Name implements subcommands.Command.Name.
func (*Record) Name() string {
	return "record"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Record) Synopsis() string {
	return "record the sample sequence against an in-process host"
}

// Usage implements subcommands.Command.Usage.
func (*Record) Usage() string {
	return `record <capture file> - play the sample sequence over a socket pair and save the guest stream.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Record) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Record) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage(f)
	}
	conf := getConfig(args)
	path := f.Arg(0)

	guest, host, err := pipe.Socketpair()
	if err != nil {
		return util.Errorf("%v", err)
	}
	done := make(chan error, 1)
	go func() {
		defer host.Close()
		done <- command.NewServer(vk.Commands, vk.NewHost()).ServeConn(ctx, host)
	}()

	err = playSample(guest, path, conf, map[string]string{"source": "in-process"})
	guest.Close()
	if serr := <-done; err == nil {
		err = serr
	}
	if err != nil {
		return util.Errorf("recording %q: %v", path, err)
	}
	util.Infof("Recorded %d commands to %q", len(vk.SampleCalls()), path)
	return subcommands.ExitSuccess
}
