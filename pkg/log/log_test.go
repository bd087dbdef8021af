// Copyright 2018 The gVisor Authors.
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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type testWriter struct {
	lines []string
	fail  bool
}

func (w *testWriter) Write(bytes []byte) (int, error) {
	if w.fail {
		return 0, fmt.Errorf("simulated failure")
	}
	w.lines = append(w.lines, string(bytes))
	return len(bytes), nil
}

func TestDropMessages(t *testing.T) {
	tw := &testWriter{}
	w := Writer{Next: tw}
	if _, err := w.Write([]byte("line 1\n")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}

	tw.fail = true
	if _, err := w.Write([]byte("error\n")); err == nil {
		t.Fatalf("Write should have failed")
	}
	if _, err := w.Write([]byte("error\n")); err == nil {
		t.Fatalf("Write should have failed")
	}

	tw.fail = false
	if _, err := w.Write([]byte("line 2\n")); err != nil {
		t.Fatalf("Write failed, err: %v", err)
	}

	expected := []string{
		"line 1\n",
		"line 2\n",
		"\n*** Dropped 2 log messages ***\n",
	}
	if len(tw.lines) != len(expected) {
		t.Fatalf("Writer should have logged %d lines, got: %v, expected: %v", len(expected), tw.lines, expected)
	}
	for i, l := range tw.lines {
		if l != expected[i] {
			t.Fatalf("line %d doesn't match, got: %q, expected: %q", i, l, expected[i])
		}
	}
}

func TestCaller(t *testing.T) {
	for _, tc := range []struct {
		name string
		e    func(*Writer) Emitter
	}{
		{name: "GoogleEmitter", e: func(w *Writer) Emitter { return GoogleEmitter{w} }},
		{name: "JSONEmitter", e: func(w *Writer) Emitter { return JSONEmitter{w} }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tw := &testWriter{}
			bl := &BasicLogger{Level: Debug, Emitter: tc.e(&Writer{Next: tw})}
			bl.Infof("hello %d", 1)
			if len(tw.lines) != 1 {
				t.Fatalf("got %d lines, want 1: %v", len(tw.lines), tw.lines)
			}
			if !strings.Contains(tw.lines[0], "log_test.go:") {
				t.Errorf("caller not reported in %q", tw.lines[0])
			}
			if !strings.Contains(tw.lines[0], "hello 1") {
				t.Errorf("message missing from %q", tw.lines[0])
			}
		})
	}
}

func TestLevelFilter(t *testing.T) {
	tw := &testWriter{}
	bl := &BasicLogger{Level: Info, Emitter: GoogleEmitter{&Writer{Next: tw}}}
	bl.Debugf("hidden")
	bl.Infof("shown")
	bl.Warningf("shown too")
	if got, want := len(tw.lines), 2; got != want {
		t.Fatalf("got %d lines, want %d: %v", got, want, tw.lines)
	}
	bl.SetLevel(Debug)
	if !bl.IsLogging(Debug) {
		t.Errorf("IsLogging(Debug) = false after SetLevel(Debug)")
	}
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "warning", want: Warning},
		{in: "warn", want: Warning},
		{in: "info", want: Info},
		{in: "debug", want: Debug},
		{in: "loud", wantErr: true},
	} {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %t", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRateLimited(t *testing.T) {
	tw := &testWriter{}
	bl := &BasicLogger{Level: Info, Emitter: GoogleEmitter{&Writer{Next: tw}}}
	rl := RateLimitedLogger(bl, time.Hour)
	for i := 0; i < 10; i++ {
		rl.Warningf("mismatch %d", i)
	}
	if got := len(tw.lines); got != 1 {
		t.Errorf("got %d lines, want 1", got)
	}
	if got := rl.(DropCounter).Dropped(); got != 9 {
		t.Errorf("Dropped() = %d, want 9", got)
	}
}

func TestLogrusEmitter(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	bl := &BasicLogger{Level: Debug, Emitter: NewLogrusEmitter(l)}
	bl.Warningf("frame %d rejected", 7)

	out := buf.String()
	if !strings.Contains(out, "level=warning") {
		t.Errorf("missing level in %q", out)
	}
	if !strings.Contains(out, "frame 7 rejected") {
		t.Errorf("missing message in %q", out)
	}
	if !strings.Contains(out, "caller=") {
		t.Errorf("missing caller in %q", out)
	}
}

func TestJSONEmitter(t *testing.T) {
	tw := &testWriter{}
	bl := &BasicLogger{Level: Debug, Emitter: JSONEmitter{&Writer{Next: tw}}}
	bl.Warningf("disk %s", "full")
	if len(tw.lines) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(tw.lines), tw.lines)
	}
	var got jsonLog
	if err := json.Unmarshal([]byte(tw.lines[0]), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", tw.lines[0], err)
	}
	if got.Level != Warning || got.Msg != "disk full" || !strings.HasPrefix(got.Caller, "log_test.go:") {
		t.Errorf("got %+v", got)
	}
}

func TestLevelJSON(t *testing.T) {
	for _, in := range []string{`"debug"`, `2`} {
		var l Level
		if err := json.Unmarshal([]byte(in), &l); err != nil || l != Debug {
			t.Errorf("Unmarshal(%s) = %v, %v, want Debug", in, l, err)
		}
	}
	for _, in := range []string{`"loud"`, `7`, `true`} {
		var l Level
		if err := json.Unmarshal([]byte(in), &l); err == nil {
			t.Errorf("Unmarshal(%s) succeeded", in)
		}
	}
}
