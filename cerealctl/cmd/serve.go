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
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"golang.org/x/sys/unix"
	"goldfish.dev/cereal/cerealctl/cmd/util"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/log"
	"goldfish.dev/cereal/pkg/pipe"
	"goldfish.dev/cereal/pkg/vk"
)

// Serve implements subcommands.Command for the "serve" command.
type Serve struct{}

// Name implements subcommands.Command.Name.
func (*Serve) Name() string {
	return "serve"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Serve) Synopsis() string {
	return "execute Vulkan commands sent by guests"
}

// Usage implements subcommands.Command.Usage.
func (*Serve) Usage() string {
	return `serve [--addr=<endpoint>] - listen on the endpoint and run a host for each guest.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Serve) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Serve) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usage(f)
	}
	conf := getConfig(args)

	l, err := pipe.Listen(conf.Addr())
	if err != nil {
		return util.Errorf("listening on %v: %v", conf.Addr(), err)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, unix.SIGTERM)
	defer stop()

	host := vk.NewHost()
	srv := command.NewServer(vk.Commands, host)
	srv.MaxConns = conf.MaxConns
	log.Infof("Serving %d commands on %v", vk.Commands.Len(), conf.Addr())
	if err := srv.Serve(ctx, l); err != nil {
		return util.Errorf("serving on %v: %v", conf.Addr(), err)
	}
	st := host.Stats()
	log.Infof("Shut down with %d instances, %d devices and %d pipelines live", len(st.Instances), len(st.Devices), len(st.Pipelines))
	return subcommands.ExitSuccess
}
