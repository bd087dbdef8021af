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
	"math/rand/v2"
	"reflect"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
	"goldfish.dev/cereal/cerealctl/cmd/util"
	"goldfish.dev/cereal/pkg/cereal/check"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/log"
	"goldfish.dev/cereal/pkg/pipe"
	"goldfish.dev/cereal/pkg/vk"
	"goldfish.dev/cereal/tools/cerealgen/analysis"
)

// roundtripper marshals a random value of one type and checks the decoded
// copy against it.
type roundtripper struct {
	name string
	run  func(r *rand.Rand, opts *analysis.Options, onFail check.OnFailFunc) (int, error)
}

func roundtripFor[T any, P analysis.Equaler[T]]() roundtripper {
	return roundtripper{
		name: reflect.TypeFor[T]().Name(),
		run: func(r *rand.Rand, opts *analysis.Options, onFail check.OnFailFunc) (int, error) {
			v := new(T)
			analysis.RandomizeValue(v, r, opts)
			return analysis.Roundtrip[T, P](v, onFail)
		},
	}
}

// roundtrippers covers every command payload; nested types are reached
// through them.
var roundtrippers = []roundtripper{
	roundtripFor[vk.CreateInstanceParams](),
	roundtripFor[vk.CreateInstanceReply](),
	roundtripFor[vk.DestroyInstanceParams](),
	roundtripFor[vk.EnumeratePhysicalDevicesParams](),
	roundtripFor[vk.EnumeratePhysicalDevicesReply](),
	roundtripFor[vk.GetPhysicalDevicePropertiesParams](),
	roundtripFor[vk.GetPhysicalDevicePropertiesReply](),
	roundtripFor[vk.CreateDeviceParams](),
	roundtripFor[vk.CreateDeviceReply](),
	roundtripFor[vk.DestroyDeviceParams](),
	roundtripFor[vk.QueueBindSparseParams](),
	roundtripFor[vk.CreateComputePipelinesParams](),
	roundtripFor[vk.CreateComputePipelinesReply](),
}

// Selftest implements subcommands.Command for the "selftest" command.
type Selftest struct {
	sessions   int
	iterations int
	seed       uint64
	maxLen     int
	host       bool
}

// Name implements subcommands.Command.Name.
func (*Selftest) Name() string {
	return "selftest"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Selftest) Synopsis() string {
	return "round-trip random values of every command through the codec"
}

// Usage implements subcommands.Command.Usage.
func (*Selftest) Usage() string {
	return `selftest [flags] - marshal random commands, decode them and compare.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Selftest) SetFlags(f *flag.FlagSet) {
	f.IntVar(&s.sessions, "sessions", runtime.NumCPU(), "number of sessions run in parallel.")
	f.IntVar(&s.iterations, "iterations", 1000, "iterations per session.")
	f.Uint64Var(&s.seed, "seed", 0, "random seed. Zero picks one from the clock.")
	f.IntVar(&s.maxLen, "max-len", analysis.DefaultOptions.MaxLen, "maximum length of random strings and arrays.")
	f.BoolVar(&s.host, "host", true, "also play the sample sequence against a host over a socket pair in each session.")
}

// Execute implements subcommands.Command.Execute.
func (s *Selftest) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 || s.sessions < 1 || s.iterations < 0 {
		return usage(f)
	}
	seed := s.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infof("Selftest: %d sessions of %d iterations, seed %d", s.sessions, s.iterations, seed)

	opts := analysis.DefaultOptions
	opts.MaxLen = s.maxLen
	logger := log.BasicRateLimitedLogger(time.Second)
	var mismatches atomic.Uint64

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < s.sessions; i++ {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			for it := 0; it < s.iterations && gctx.Err() == nil; it++ {
				for _, rt := range roundtrippers {
					onFail := func(msg string) {
						logger.Warningf("session %d iteration %d: %s: %s", i, it, rt.name, msg)
					}
					n, err := rt.run(r, &opts, onFail)
					if err != nil {
						return err
					}
					mismatches.Add(uint64(n))
				}
			}
			if s.host {
				return playSession(gctx)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return util.Errorf("selftest failed, seed %d: %v", seed, err)
	}
	if n := mismatches.Load(); n > 0 {
		dropped := uint64(0)
		if dc, ok := logger.(log.DropCounter); ok {
			dropped = dc.Dropped()
		}
		return util.Errorf("selftest found %d mismatches (%d not logged), seed %d", n, dropped, seed)
	}
	util.Infof("Selftest passed: %d sessions, %d types", s.sessions, len(roundtrippers))
	return subcommands.ExitSuccess
}

// playSession plays the sample sequence against a fresh host.
func playSession(ctx context.Context) error {
	guest, host, err := pipe.Socketpair()
	if err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		defer host.Close()
		done <- command.NewServer(vk.Commands, vk.NewHost()).ServeConn(ctx, host)
	}()
	err = vk.Play(command.NewClient(guest, vk.Commands), vk.SampleCalls())
	guest.Close()
	if serr := <-done; err == nil {
		err = serr
	}
	return err
}
