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

package log

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LogrusEmitter forwards messages to a logrus logger. It is used when the
// host process already aggregates logrus output, e.g. a containerd shim.
type LogrusEmitter struct {
	Logger *logrus.Logger
}

// NewLogrusEmitter returns an emitter writing through l. A nil l selects
// logrus.StandardLogger().
func NewLogrusEmitter(l *logrus.Logger) LogrusEmitter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return LogrusEmitter{Logger: l}
}

func logrusLevel(level Level) logrus.Level {
	switch level {
	case Warning:
		return logrus.WarnLevel
	case Info:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// Emit implements Emitter.Emit.
func (e LogrusEmitter) Emit(depth int, level Level, timestamp time.Time, format string, v ...any) {
	entry := e.Logger.WithTime(timestamp)
	if _, file, line, ok := runtime.Caller(depth + 1); ok {
		if slash := strings.LastIndexByte(file, byte('/')); slash >= 0 {
			file = file[slash+1:]
		}
		entry = entry.WithField("caller", fmt.Sprintf("%s:%d", file, line))
	}
	entry.Logf(logrusLevel(level), format, v...)
}
