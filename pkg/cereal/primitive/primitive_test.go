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

package primitive

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/check"
	"goldfish.dev/cereal/pkg/cereal/deepcopy"
)

func TestScalarsRoundtrip(t *testing.T) {
	for _, tc := range []struct {
		name     string
		src, dst cereal.Marshallable
		size     int
	}{
		{"Uint8", Allocate(Uint8(0xab)), new(Uint8), 1},
		{"Int8", Allocate(Int8(-2)), new(Int8), 1},
		{"Uint16", Allocate(Uint16(0xabcd)), new(Uint16), 2},
		{"Int16", Allocate(Int16(-300)), new(Int16), 2},
		{"Uint32", Allocate(Uint32(0xdeadbeef)), new(Uint32), 4},
		{"Int32", Allocate(Int32(math.MinInt32)), new(Int32), 4},
		{"Bool32", Allocate(FromBool(true)), new(Bool32), 4},
		{"Uint64", Allocate(Uint64(math.MaxUint64)), new(Uint64), 8},
		{"Int64", Allocate(Int64(-1)), new(Int64), 8},
		{"Float32", Allocate(Float32(3.5)), new(Float32), 4},
		{"Float64", Allocate(Float64(math.Inf(-1))), new(Float64), 8},
		{"String", Allocate(String("queue")), new(String), 9},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := cereal.New()
			if err := tc.src.Marshal(s); err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if s.Len() != tc.size {
				t.Errorf("encoded size = %d, want %d", s.Len(), tc.size)
			}
			if err := tc.dst.Unmarshal(s); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(tc.src, tc.dst); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountedArrayOfScalars(t *testing.T) {
	in := []Float32{0, 4, 8, 12}
	s := cereal.New()
	if err := cereal.PutArray(s, in); err != nil {
		t.Fatalf("PutArray: %v", err)
	}
	var out []Float32
	if err := cereal.GetArray(s, &out); err != nil {
		t.Fatalf("GetArray: %v", err)
	}
	var msgs []string
	check.Counted(check.New(func(m string) { msgs = append(msgs, m) }), "priorities", in, out)
	if len(msgs) != 0 {
		t.Errorf("mismatches: %q", msgs)
	}

	var p deepcopy.Pool
	cp := deepcopy.Array(&p, in)
	cp[0] = 1
	if in[0] != 0 {
		t.Errorf("copy aliases source")
	}
}

func TestBool32(t *testing.T) {
	if FromBool(false).Bool() || !FromBool(true).Bool() || !Bool32(7).Bool() {
		t.Errorf("Bool32 conversions are wrong")
	}
}
