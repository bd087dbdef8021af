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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBigEndianLayout(t *testing.T) {
	s := New()
	if err := s.PutBe16(0x0102); err != nil {
		t.Fatal(err)
	}
	if err := s.PutBe32(0x03040506); err != nil {
		t.Fatal(err)
	}
	if err := s.PutBe64(0x0708090a0b0c0d0e); err != nil {
		t.Fatal(err)
	}
	got, err := s.ReadBytes(s.Len())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded %v, want %v", got, want)
	}
}

func TestScalarRoundtrip(t *testing.T) {
	s := New()
	for _, put := range []func() error{
		func() error { return s.PutBe8(0xff) },
		func() error { return s.PutBe16(0xbeef) },
		func() error { return s.PutBe32(0xdeadbeef) },
		func() error { return s.PutBe64(0xfeedfacecafebabe) },
		func() error { return s.PutInt32(-7) },
		func() error { return s.PutInt64(math.MinInt64) },
		func() error { return s.PutFloat32(0.25) },
		func() error { return s.PutFloat64(-1e300) },
	} {
		if err := put(); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	if v, err := s.GetBe8(); err != nil || v != 0xff {
		t.Errorf("GetBe8 = %#x, %v", v, err)
	}
	if v, err := s.GetBe16(); err != nil || v != 0xbeef {
		t.Errorf("GetBe16 = %#x, %v", v, err)
	}
	if v, err := s.GetBe32(); err != nil || v != 0xdeadbeef {
		t.Errorf("GetBe32 = %#x, %v", v, err)
	}
	if v, err := s.GetBe64(); err != nil || v != 0xfeedfacecafebabe {
		t.Errorf("GetBe64 = %#x, %v", v, err)
	}
	if v, err := s.GetInt32(); err != nil || v != -7 {
		t.Errorf("GetInt32 = %d, %v", v, err)
	}
	if v, err := s.GetInt64(); err != nil || v != math.MinInt64 {
		t.Errorf("GetInt64 = %d, %v", v, err)
	}
	if v, err := s.GetFloat32(); err != nil || v != 0.25 {
		t.Errorf("GetFloat32 = %v, %v", v, err)
	}
	if v, err := s.GetFloat64(); err != nil || v != -1e300 {
		t.Errorf("GetFloat64 = %v, %v", v, err)
	}
	if s.Len() != 0 {
		t.Errorf("%d bytes left over", s.Len())
	}
}

func TestFloatBitsPreserved(t *testing.T) {
	nan := math.Float32frombits(0x7fc00123)
	s := New()
	if err := s.PutFloat32(nan); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetFloat32()
	if err != nil {
		t.Fatal(err)
	}
	if math.Float32bits(got) != 0x7fc00123 {
		t.Errorf("NaN payload changed to %#x", math.Float32bits(got))
	}
}

func TestStringEncoding(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []byte
	}{
		{in: "", want: []byte{0, 0, 0, 0}},
		{in: "vk", want: []byte{0, 0, 0, 2, 'v', 'k'}},
	} {
		s := New()
		if err := s.PutString(tc.in); err != nil {
			t.Fatalf("PutString(%q): %v", tc.in, err)
		}
		p, _ := s.Peek(s.Len())
		if !bytes.Equal(p, tc.want) {
			t.Errorf("PutString(%q) wrote %v, want %v", tc.in, p, tc.want)
		}
		got, err := s.GetString()
		if err != nil || got != tc.in {
			t.Errorf("GetString = %q, %v, want %q", got, err, tc.in)
		}
	}
}

func TestStringLengthBeyondStream(t *testing.T) {
	s := New()
	if err := s.PutBe32(1 << 30); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetString(); !errors.Is(err, ErrUnderflow) {
		t.Errorf("GetString = %v, want ErrUnderflow", err)
	}
}

// The layout exercised by the guest encoder's own basic test: a mix of every
// width followed by string arrays.
func TestBasicStream(t *testing.T) {
	s := New()
	names := []string{"VK_KHR_surface", "", "VK_EXT_debug_utils"}

	if err := s.PutBe8(1); err != nil {
		t.Fatal(err)
	}
	if err := s.PutBe16(2); err != nil {
		t.Fatal(err)
	}
	if err := s.PutBe32(4); err != nil {
		t.Fatal(err)
	}
	if err := s.PutBe64(8); err != nil {
		t.Fatal(err)
	}
	if err := s.PutStringArray(names); err != nil {
		t.Fatal(err)
	}
	if err := s.PutStringArray(nil); err != nil {
		t.Fatal(err)
	}

	if v, _ := s.GetBe8(); v != 1 {
		t.Errorf("be8 = %d", v)
	}
	if v, _ := s.GetBe16(); v != 2 {
		t.Errorf("be16 = %d", v)
	}
	if v, _ := s.GetBe32(); v != 4 {
		t.Errorf("be32 = %d", v)
	}
	if v, _ := s.GetBe64(); v != 8 {
		t.Errorf("be64 = %d", v)
	}
	got, err := s.GetStringArray(nil)
	if err != nil {
		t.Fatalf("GetStringArray: %v", err)
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("string array mismatch (-want +got):\n%s", diff)
	}
	empty, err := s.GetStringArray(got)
	if err != nil {
		t.Fatalf("GetStringArray: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("empty array decoded as %q", empty)
	}
	if err := s.Err(); err != nil || s.Len() != 0 {
		t.Errorf("stream left with %d bytes, err %v", s.Len(), err)
	}
}
