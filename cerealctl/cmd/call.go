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
	"strconv"

	"github.com/google/subcommands"
	"goldfish.dev/cereal/cerealctl/cmd/util"
	"goldfish.dev/cereal/pkg/pipe"
)

// Call implements subcommands.Command for the "call" command.
type Call struct {
	record string
	repeat int
}

// Name implements subcommands.Command.Name.
func (*Call) Name() string {
	return "call"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Call) Synopsis() string {
	return "send the sample command sequence to a serving host"
}

// Usage implements subcommands.Command.Usage.
func (*Call) Usage() string {
	return `call [flags] - dial the endpoint and play the sample sequence.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Call) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.record, "record", "", "also write the commands sent to this capture file.")
	f.IntVar(&c.repeat, "repeat", 1, "number of times to play the sequence.")
}

// Execute implements subcommands.Command.Execute.
func (c *Call) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 || c.repeat < 1 {
		return usage(f)
	}
	conf := getConfig(args)

	conn, err := pipe.Dial(ctx, conf.Addr(), conf.DialTimeout)
	if err != nil {
		return util.Errorf("%v", err)
	}
	defer conn.Close()

	for i := 0; i < c.repeat; i++ {
		path := c.record
		if path != "" && c.repeat > 1 {
			path += "." + strconv.Itoa(i)
		}
		meta := map[string]string{"source": conf.Address}
		if err := playSample(conn, path, conf, meta); err != nil {
			return util.Errorf("round %d: %v", i, err)
		}
	}
	util.Infof("Played the sample sequence %d times against %v", c.repeat, conf.Addr())
	return subcommands.ExitSuccess
}
