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

package pipe

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseAddr(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Addr
	}{
		{"unix:/tmp/cereal.sock", Addr{Network: Unix, Path: "/tmp/cereal.sock"}},
		{"tcp:127.0.0.1:5555", Addr{Network: TCP, Path: "127.0.0.1:5555"}},
		{"vsock:2:1234", Addr{Network: VSock, CID: 2, Port: 1234}},
	} {
		got, err := ParseAddr(test.in)
		if err != nil {
			t.Errorf("ParseAddr(%q): %v", test.in, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseAddr(%q) mismatch (-want +got):\n%s", test.in, diff)
		}
		if s := got.String(); s != test.in {
			t.Errorf("String() = %q, want %q", s, test.in)
		}
	}
}

func TestParseAddrErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"unix",
		"unix:",
		"tcp:nohost",
		"vsock:2",
		"vsock:x:1",
		"vsock:2:99999999999",
		"pipe:foo",
	} {
		if a, err := ParseAddr(in); err == nil {
			t.Errorf("ParseAddr(%q) = %v, want error", in, a)
		}
	}
}

func TestSocketpair(t *testing.T) {
	a, b, err := Socketpair()
	if err != nil {
		t.Fatalf("Socketpair: %v", err)
	}
	defer a.Close()
	defer b.Close()

	go a.Write([]byte("ping"))
	buf := make([]byte, 4)
	if _, err := io.ReadFull(b, buf); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if string(buf) != "ping" {
		t.Errorf("read %q, want ping", buf)
	}
}

func TestListenDialUnix(t *testing.T) {
	a := Addr{Network: Unix, Path: filepath.Join(t.TempDir(), "s")}
	l, err := Listen(a)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	accepted := make(chan error, 1)
	go func() {
		c, err := l.Accept()
		if err == nil {
			_, err = c.Write([]byte{42})
			c.Close()
		}
		accepted <- err
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, err := Dial(ctx, a, 5*time.Second)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()
	var b [1]byte
	if _, err := io.ReadFull(c, b[:]); err != nil || b[0] != 42 {
		t.Errorf("read %v, %v, want 42", b[0], err)
	}
	if err := <-accepted; err != nil {
		t.Errorf("Accept: %v", err)
	}
}

func TestDialRetriesUntilListening(t *testing.T) {
	a := Addr{Network: Unix, Path: filepath.Join(t.TempDir(), "late")}
	ready := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		l, err := Listen(a)
		if err != nil {
			close(ready)
			return
		}
		defer l.Close()
		close(ready)
		if c, err := l.Accept(); err == nil {
			c.Close()
		}
	}()

	c, err := Dial(context.Background(), a, 10*time.Second)
	<-ready
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	c.Close()
}

func TestDialCanceled(t *testing.T) {
	a := Addr{Network: Unix, Path: filepath.Join(t.TempDir(), "never")}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if c, err := Dial(ctx, a, 0); err == nil {
		c.Close()
		t.Errorf("Dial succeeded without a listener")
	}
}
