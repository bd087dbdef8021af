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

// Package cli is the main entrypoint for cerealctl.
package cli

import (
	"context"
	"flag"
	"io"
	"os"
	"runtime"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"goldfish.dev/cereal/cerealctl/cmd"
	"goldfish.dev/cereal/cerealctl/cmd/util"
	"goldfish.dev/cereal/cerealctl/config"
	"goldfish.dev/cereal/pkg/log"
)

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// Register with the main command line.
	config.RegisterFlags(flag.CommandLine)

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flag.CommandLine)
	if err != nil {
		util.Fatalf("%s", err.Error())
	}

	var logFile io.Writer = os.Stderr
	if conf.LogFilename != "" {
		f, err := os.OpenFile(conf.LogFilename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			util.Fatalf("error opening log file %q: %v", conf.LogFilename, err)
		}
		logFile = f
		util.ErrorLogger = f
	}

	if conf.Debug {
		log.SetLevel(log.Debug)
	}
	emitters := log.MultiEmitter{newEmitter(conf.LogFormat, logFile)}
	if conf.AlsoLogToStderr && logFile != os.Stderr {
		emitters = append(emitters, newEmitter(conf.LogFormat, os.Stderr))
	}
	if len(emitters) == 1 {
		log.SetTarget(emitters[0])
	} else {
		log.SetTarget(&emitters)
	}

	log.Infof("cerealctl %s, %s, PID %d", runtime.Version(), runtime.GOARCH, os.Getpid())
	log.Infof("Args: %v", os.Args)
	conf.Log()

	// Call the subcommand and pass in the configuration.
	os.Exit(int(subcommands.Execute(context.Background(), conf)))
}

// forEachCmd invokes the passed callback for each command supported by
// cerealctl.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")
	cb(subcommands.CommandsCommand(), "")

	cb(new(cmd.Serve), "")
	cb(new(cmd.Call), "")
	cb(new(cmd.Record), "")

	const debugGroup = "debug"
	cb(new(cmd.Dump), debugGroup)
	cb(new(cmd.Opcodes), debugGroup)
	cb(new(cmd.Selftest), debugGroup)
}

func newEmitter(format string, logFile io.Writer) log.Emitter {
	switch format {
	case "text":
		return log.GoogleEmitter{Writer: &log.Writer{Next: logFile}}
	case "json":
		return log.JSONEmitter{Writer: &log.Writer{Next: logFile}}
	case "logrus":
		l := logrus.New()
		l.SetOutput(logFile)
		l.SetLevel(logrus.DebugLevel)
		return log.NewLogrusEmitter(l)
	}
	util.Fatalf("invalid log format %q, must be 'text', 'json' or 'logrus'", format)
	panic("unreachable")
}
