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
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"goldfish.dev/cereal/cerealctl/config"
	"goldfish.dev/cereal/pkg/capture"
	"goldfish.dev/cereal/pkg/cereal/command"
	"goldfish.dev/cereal/pkg/pipe"
	"goldfish.dev/cereal/pkg/vk"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(fs)
	conf, err := config.NewFromFlags(fs)
	if err != nil {
		t.Fatal(err)
	}
	return conf
}

// recordSample writes a capture of the sample sequence and returns its path.
func recordSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.cap")
	guest, host, err := pipe.Socketpair()
	if err != nil {
		t.Fatalf("Socketpair: %v", err)
	}
	done := make(chan error, 1)
	go func() {
		defer host.Close()
		done <- command.NewServer(vk.Commands, vk.NewHost()).ServeConn(context.Background(), host)
	}()
	if err := playSample(guest, path, testConfig(t), map[string]string{"source": "test"}); err != nil {
		t.Fatalf("playSample: %v", err)
	}
	guest.Close()
	if err := <-done; err != nil {
		t.Fatalf("ServeConn: %v", err)
	}
	return path
}

func TestRecordAndDump(t *testing.T) {
	path := recordSample(t)
	r, err := capture.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if got := r.Metadata["source"]; got != "test" {
		t.Errorf("Metadata[source] = %q, want test", got)
	}

	var names []string
	err = dumpFrames(r.Body(), func(e entry) error {
		if e.Error != "" {
			t.Errorf("frame %d: %s", e.Index, e.Error)
		}
		names = append(names, e.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("dumpFrames: %v", err)
	}
	want := []string{
		"vkCreateInstance",
		"vkEnumeratePhysicalDevices",
		"vkGetPhysicalDeviceProperties",
		"vkCreateDevice",
		"vkQueueBindSparse",
		"vkCreateComputePipelines",
		"vkDestroyDevice",
		"vkDestroyInstance",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("recorded commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpFormats(t *testing.T) {
	path := recordSample(t)
	for _, tc := range []struct {
		format string
		want   string
	}{
		{format: "text", want: "vkCreateInstance"},
		{format: "json", want: `"name": "vkCreateInstance"`},
		{format: "yaml", want: "name: vkCreateInstance"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			r, err := capture.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer r.Close()
			var out bytes.Buffer
			d := Dump{format: tc.format}
			emit, err := d.emitter(&out)
			if err != nil {
				t.Fatalf("emitter: %v", err)
			}
			if err := dumpFrames(r.Body(), emit); err != nil {
				t.Fatalf("dumpFrames: %v", err)
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Errorf("output does not contain %q:\n%s", tc.want, out.String())
			}
		})
	}

	d := Dump{format: "xml"}
	if _, err := d.emitter(&bytes.Buffer{}); err == nil {
		t.Errorf("emitter accepted format xml")
	}
}

func TestRoundtrippers(t *testing.T) {
	if got, want := len(roundtrippers), vk.Commands.Len()+5; got != want {
		t.Errorf("%d roundtrippers, want one per request and reply (%d)", got, want)
	}
}
