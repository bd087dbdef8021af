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

// Package config provides basic infrastructure to set configuration settings
// for cerealctl. Each setting is a flag, and may also be given in a TOML
// file named by --config; flags set on the command line take precedence.
package config

import (
	"fmt"
	"time"

	"goldfish.dev/cereal/pkg/log"
	"goldfish.dev/cereal/pkg/pipe"
)

// Config holds configuration that is not part of a single command.
//
// Follow these steps to add a new flag:
//  1. Create a new field in Config.
//  2. Add a field tag with the flag name and a toml tag with the same name.
//  3. Register a new flag in flags.go, with name and description.
//  4. Add any necessary validation into validate().
type Config struct {
	// ConfigFile is the TOML file the other settings were read from.
	ConfigFile string `flag:"config" toml:"-"`

	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug" toml:"debug"`

	// LogFilename is the filename to log to, if not empty.
	LogFilename string `flag:"log" toml:"log"`

	// LogFormat is the log format: "text", "json" or "logrus".
	LogFormat string `flag:"log-format" toml:"log-format"`

	// AlsoLogToStderr allows to send log messages to stderr as well as
	// LogFilename.
	AlsoLogToStderr bool `flag:"alsologtostderr" toml:"alsologtostderr"`

	// Address is the endpoint serve listens on and call dials.
	Address string `flag:"addr" toml:"addr"`

	// DialTimeout bounds how long call keeps retrying to connect. Zero
	// retries forever.
	DialTimeout time.Duration `flag:"dial-timeout" toml:"dial-timeout"`

	// Compress enables zstd compression of capture files.
	Compress bool `flag:"compress" toml:"compress"`

	// MaxConns limits concurrent connections accepted by serve. Zero means
	// unlimited.
	MaxConns int `flag:"max-conns" toml:"max-conns"`
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json", "logrus":
	default:
		return fmt.Errorf("invalid log format %q, must be 'text', 'json' or 'logrus'", c.LogFormat)
	}
	if _, err := pipe.ParseAddr(c.Address); err != nil {
		return err
	}
	if c.DialTimeout < 0 {
		return fmt.Errorf("dial-timeout must not be negative, got: %v", c.DialTimeout)
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("max-conns must not be negative, got: %d", c.MaxConns)
	}
	return nil
}

// Addr returns the parsed Address.
func (c *Config) Addr() pipe.Addr {
	// Checked by validate.
	a, _ := pipe.ParseAddr(c.Address)
	return a
}

// Log logs important aspects of the configuration to the given log function.
func (c *Config) Log() {
	log.Infof("Config: debug %t, log format %q, address %s, compress %t", c.Debug, c.LogFormat, c.Address, c.Compress)
	if c.ConfigFile != "" {
		log.Infof("Config: loaded from %q", c.ConfigFile)
	}
}
