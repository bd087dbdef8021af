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

package capture

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/command"
)

type frame struct {
	op      command.Opcode
	payload string
}

var frames = []frame{
	{1, "first"},
	{2, ""},
	{20066, "a longer payload that repeats, a longer payload that repeats"},
}

func writeFrames(t *testing.T, w *Writer) {
	t.Helper()
	for _, f := range frames {
		s := cereal.New()
		s.PutBytes([]byte(f.payload))
		if err := w.WriteFrame(f.op, s); err != nil {
			t.Fatalf("WriteFrame(%d): %v", f.op, err)
		}
	}
}

func readFrames(t *testing.T, r *Reader) {
	t.Helper()
	for _, want := range frames {
		s := cereal.New()
		op, err := r.Next(s)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got, _ := s.ReadBytes(s.Len())
		if op != want.op || string(got) != want.payload {
			t.Errorf("Next = %d %q, want %d %q", op, got, want.op, want.payload)
		}
	}
	if op, err := r.Next(cereal.New()); err != io.EOF {
		t.Errorf("Next after last frame = %d, %v, want EOF", op, err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		w, err := NewWriter(&buf, map[string]string{"guest": "test"}, compress)
		if err != nil {
			t.Fatalf("NewWriter(compress=%t): %v", compress, err)
		}
		writeFrames(t, w)
		if err := w.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		r, err := NewReader(&buf)
		if err != nil {
			t.Fatalf("NewReader(compress=%t): %v", compress, err)
		}
		if got := r.Metadata["guest"]; got != "test" {
			t.Errorf("Metadata[guest] = %q, want test", got)
		}
		if r.Metadata[TimestampKey] == "" {
			t.Errorf("missing %s", TimestampKey)
		}
		wantCompression := "none"
		if compress {
			wantCompression = "zstd"
		}
		if got := r.Metadata[CompressionKey]; got != wantCompression {
			t.Errorf("Metadata[%s] = %q, want %q", CompressionKey, got, wantCompression)
		}
		readFrames(t, r)
		r.Close()
	}
}

func TestReservedMetadata(t *testing.T) {
	if _, err := NewWriter(io.Discard, map[string]string{"_mine": "x"}, false); err != ErrMetadataInvalid {
		t.Errorf("NewWriter with reserved key = %v, want %v", err, ErrMetadataInvalid)
	}
}

func TestBadHeader(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte("notcereal and more"))); err != ErrBadMagic {
		t.Errorf("NewReader = %v, want %v", err, ErrBadMagic)
	}

	var hdr bytes.Buffer
	hdr.Write(magicHeader)
	hdr.Write([]byte{0, 0, 0, 0, 0xff, 0, 0, 0})
	if _, err := NewReader(&hdr); err != ErrInvalidMetadataLength {
		t.Errorf("NewReader = %v, want %v", err, ErrInvalidMetadataLength)
	}
}

func TestCreateOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cap")
	w, err := Create(path, nil, true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := Create(path, nil, true); !errors.Is(err, ErrLocked) {
		t.Errorf("second Create = %v, want %v", err, ErrLocked)
	}
	writeFrames(t, w)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	readFrames(t, r)
}
