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
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
	"goldfish.dev/cereal/cerealctl/cmd/util"
	"goldfish.dev/cereal/pkg/capture"
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/vk"
)

// Dump implements subcommands.Command for the "dump" command.
type Dump struct {
	format string
	list   bool
	get    string
	output string
}

// Name implements subcommands.Command.Name.
func (*Dump) Name() string {
	return "dump"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Dump) Synopsis() string {
	return "shows the commands in a capture file"
}

// Usage implements subcommands.Command.Usage.
func (*Dump) Usage() string {
	return `dump [flags] <capture file>
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (d *Dump) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.format, "format", "text", "output format: text, json or yaml.")
	f.BoolVar(&d.list, "list", false, "lists the metadata keys in the capture.")
	f.StringVar(&d.get, "get", "", "extracts the given metadata key.")
	f.StringVar(&d.output, "output", "", "target to write the result.")
}

// entry is one decoded command.
type entry struct {
	Index   int                 `json:"index" yaml:"index"`
	Opcode  command.Opcode      `json:"opcode" yaml:"opcode"`
	Name    string              `json:"name,omitempty" yaml:"name,omitempty"`
	Request cereal.Marshallable `json:"request,omitempty" yaml:"request,omitempty"`
	Error   string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// Execute implements subcommands.Command.Execute.
func (d *Dump) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if d.list && d.get != "" {
		util.Fatalf("error: can't specify -list and -get simultaneously.")
	}
	if f.NArg() != 1 {
		return usage(f)
	}

	var output io.Writer = os.Stdout
	if d.output != "" {
		out, err := os.OpenFile(d.output, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
		if err != nil {
			util.Fatalf("error opening output: %v", err)
		}
		defer func() {
			if err := out.Close(); err != nil {
				util.Fatalf("error flushing output: %v", err)
			}
		}()
		output = out
	}

	r, err := capture.Open(f.Arg(0))
	if err != nil {
		return util.Errorf("error opening capture: %v", err)
	}
	defer r.Close()

	if d.get != "" {
		val, ok := r.Metadata[d.get]
		if !ok {
			return util.Errorf("metadata key %s: not found", d.get)
		}
		fmt.Fprintf(output, "%s\n", val)
		return subcommands.ExitSuccess
	}
	if d.list {
		keys := make([]string, 0, len(r.Metadata))
		for k := range r.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(output, "%s\n", k)
		}
		return subcommands.ExitSuccess
	}

	emit, err := d.emitter(output)
	if err != nil {
		return util.Errorf("%v", err)
	}
	if err := dumpFrames(r.Body(), emit); err != nil {
		return util.Errorf("error reading capture: %v", err)
	}
	return subcommands.ExitSuccess
}

func (d *Dump) emitter(w io.Writer) (func(entry) error, error) {
	switch d.format {
	case "text":
		return func(e entry) error {
			if e.Error != "" {
				_, err := fmt.Fprintf(w, "%d\t%d\t%s\tERROR %s\n", e.Index, e.Opcode, e.Name, e.Error)
				return err
			}
			_, err := fmt.Fprintf(w, "%d\t%d\t%s\t%+v\n", e.Index, e.Opcode, e.Name, e.Request)
			return err
		}, nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return func(e entry) error { return enc.Encode(e) }, nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return func(e entry) error { return enc.Encode(e) }, nil
	}
	return nil, fmt.Errorf("invalid format %q, must be 'text', 'json' or 'yaml'", d.format)
}

// dumpFrames decodes every frame of body with the Vulkan command set. Frames
// that fail to decode are reported and skipped.
func dumpFrames(body io.Reader, emit func(entry) error) error {
	dec := command.NewDecoder(body, vk.Commands)
	for i := 0; ; i++ {
		c, req, err := dec.Decode()
		e := entry{Index: i, Request: req}
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case c == nil:
			return err
		case err != nil:
			e.Error = err.Error()
		}
		e.Opcode, e.Name = c.Op, c.Name
		if err := emit(e); err != nil {
			return err
		}
	}
}
