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

package cereal

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWriteThenRead(t *testing.T) {
	s := New()
	in := []byte("forwarded command")
	if n, err := s.Write(in); err != nil || n != len(in) {
		t.Fatalf("Write = %d, %v, want %d, nil", n, err, len(in))
	}
	if got := s.Len(); got != len(in) {
		t.Errorf("Len = %d, want %d", got, len(in))
	}
	out := make([]byte, len(in))
	if err := s.ReadFull(out); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Errorf("read %q, want %q", out, in)
	}
}

func TestResetOnDrain(t *testing.T) {
	s := New()
	for round := 0; round < 3; round++ {
		if _, err := s.Write([]byte{1, 2, 3, 4}); err != nil {
			t.Fatalf("round %d: Write: %v", round, err)
		}
		var p [3]byte
		if err := s.ReadFull(p[:]); err != nil {
			t.Fatalf("round %d: ReadFull: %v", round, err)
		}
		if s.read != 3 || len(s.buf) != 4 {
			t.Errorf("round %d: partial drain moved cursors to read=%d write=%d", round, s.read, len(s.buf))
		}
		if err := s.ReadFull(p[:1]); err != nil {
			t.Fatalf("round %d: ReadFull: %v", round, err)
		}
		if s.read != 0 || len(s.buf) != 0 {
			t.Errorf("round %d: drained stream has read=%d write=%d, want 0, 0", round, s.read, len(s.buf))
		}
	}
	if cap(s.buf) > 16 {
		t.Errorf("storage grew to %d bytes over three small rounds", cap(s.buf))
	}
}

func TestInterleaved(t *testing.T) {
	var s Stream
	var want, got []byte
	for i := 0; i < 100; i++ {
		b := []byte{byte(i), byte(i * 3)}
		want = append(want, b...)
		if _, err := s.Write(b); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if i%3 == 0 {
			p, err := s.ReadBytes(s.Len())
			if err != nil {
				t.Fatalf("ReadBytes: %v", err)
			}
			got = append(got, p...)
		}
	}
	rest, err := s.ReadBytes(s.Len())
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	got = append(got, rest...)
	if !bytes.Equal(got, want) {
		t.Errorf("interleaved reads reordered bytes")
	}
}

func TestUnderflow(t *testing.T) {
	s := New()
	if _, err := s.Write([]byte{1, 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var p [4]byte
	err := s.ReadFull(p[:])
	if !errors.Is(err, ErrUnderflow) {
		t.Fatalf("ReadFull = %v, want ErrUnderflow", err)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("underflow %v must not look like end of stream", err)
	}
	var ue *UnderflowError
	if !errors.As(err, &ue) || ue.Requested != 4 || ue.Available != 2 {
		t.Errorf("got %#v, want Requested=4 Available=2", ue)
	}

	// The stream is poisoned: even a satisfiable read fails now.
	if err := s.ReadFull(p[:1]); !errors.Is(err, ErrUnderflow) {
		t.Errorf("read after underflow = %v, want sticky ErrUnderflow", err)
	}
	if _, err := s.Write([]byte{3}); !errors.Is(err, ErrUnderflow) {
		t.Errorf("write after underflow = %v, want sticky ErrUnderflow", err)
	}

	s.Reset()
	if err := s.Err(); err != nil {
		t.Errorf("Err after Reset = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d", s.Len())
	}
}

func TestZeroLengthRead(t *testing.T) {
	var s Stream
	if err := s.ReadFull(nil); err != nil {
		t.Errorf("zero length read on empty stream: %v", err)
	}
	p, err := s.ReadBytes(0)
	if err != nil || len(p) != 0 {
		t.Errorf("ReadBytes(0) = %v, %v", p, err)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}

func TestAllocationLimit(t *testing.T) {
	s := NewLimited(8)
	if _, err := s.Write(make([]byte, 6)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, err := s.Write(make([]byte, 3))
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("Write past limit = %v, want ErrAllocation", err)
	}
	var ae *AllocationError
	if !errors.As(err, &ae) || ae.Limit != 8 || ae.Buffered != 6 || ae.Requested != 3 {
		t.Errorf("got %#v", ae)
	}
	if err := s.PutBe8(1); !errors.Is(err, ErrAllocation) {
		t.Errorf("PutBe8 after failure = %v, want sticky ErrAllocation", err)
	}
}

func TestLimitCountsOnlyBufferedBytes(t *testing.T) {
	s := NewLimited(4)
	for i := 0; i < 10; i++ {
		if err := s.PutBe32(uint32(i)); err != nil {
			t.Fatalf("PutBe32 #%d: %v", i, err)
		}
		if _, err := s.GetBe32(); err != nil {
			t.Fatalf("GetBe32 #%d: %v", i, err)
		}
	}
}

func TestSkipPeek(t *testing.T) {
	s := New()
	if err := s.PutBytes([]byte("abcdef")); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}
	p, err := s.Peek(3)
	if err != nil || string(p) != "abc" {
		t.Fatalf("Peek(3) = %q, %v", p, err)
	}
	if err := s.Skip(4); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	rest, err := s.ReadBytes(2)
	if err != nil || string(rest) != "ef" {
		t.Errorf("ReadBytes(2) = %q, %v", rest, err)
	}
	if _, err := s.Peek(1); !errors.Is(err, ErrUnderflow) {
		t.Errorf("Peek on empty = %v", err)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Peek must not poison the stream: %v", err)
	}
}

func TestWriteTo(t *testing.T) {
	s := New()
	if err := s.PutString("frame"); err != nil {
		t.Fatalf("PutString: %v", err)
	}
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil || n != 9 {
		t.Fatalf("WriteTo = %d, %v", n, err)
	}
	if s.Len() != 0 || len(s.buf) != 0 {
		t.Errorf("WriteTo left %d bytes", s.Len())
	}
	if got, want := buf.Bytes(), []byte{0, 0, 0, 5, 'f', 'r', 'a', 'm', 'e'}; !bytes.Equal(got, want) {
		t.Errorf("WriteTo wrote %v, want %v", got, want)
	}
}
