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
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/vk"
)

// Opcodes implements subcommands.Command for the "opcodes" command.
type Opcodes struct{}

// Name implements subcommands.Command.Name.
func (*Opcodes) Name() string {
	return "opcodes"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Opcodes) Synopsis() string {
	return "list the registered commands"
}

// Usage implements subcommands.Command.Usage.
func (*Opcodes) Usage() string {
	return "opcodes\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Opcodes) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Opcodes) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "OPCODE\tNAME\tREPLY\n")
	vk.Commands.Each(func(c *command.Command) bool {
		reply := "status"
		if c.NewReply != nil {
			reply = fmt.Sprintf("%T", c.NewReply())
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.Op, c.Name, reply)
		return true
	})
	w.Flush()
	return subcommands.ExitSuccess
}
