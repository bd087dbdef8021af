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

package check

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry struct {
	ID     uint32
	Offset uint32
	Size   uint64
}

func (x *entry) CheckEqual(y *entry, c *Checker) {
	Scalar(c, "ID", x.ID, y.ID)
	Scalar(c, "Offset", x.Offset, y.Offset)
	Scalar(c, "Size", x.Size, y.Size)
}

type info struct {
	Name     string
	Scale    float32
	Entries  []entry
	Extra    *entry
	Origin   [2]entry
	DataSize uint64
	Data     []byte
	Layers   []string
}

func (x *info) CheckEqual(y *info, c *Checker) {
	String(c, "Name", x.Name, y.Name)
	Float(c, "Scale", x.Scale, y.Scale)
	Counted(c, "Entries", x.Entries, y.Entries)
	Optional(c, "Extra", x.Extra, y.Extra)
	Fixed(c, "Origin", x.Origin[:], y.Origin[:])
	Scalar(c, "DataSize", x.DataSize, y.DataSize)
	Blob(c, "Data", x.Data, y.Data, min(x.DataSize, y.DataSize))
	Strings(c, "Layers", x.Layers, y.Layers)
}

func sample() info {
	return info{
		Name:     "pipeline",
		Scale:    1.5,
		Entries:  []entry{{1, 0, 4}, {2, 4, 8}},
		Extra:    &entry{ID: 9},
		Origin:   [2]entry{{ID: 1}, {ID: 2}},
		DataSize: 3,
		Data:     []byte{1, 2, 3, 99},
		Layers:   []string{"validation"},
	}
}

func TestEqualInstancesReportNothing(t *testing.T) {
	a, b := sample(), sample()
	b.Data[3] = 42 // Beyond DataSize.
	var msgs []string
	if !Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) }) {
		t.Errorf("Equal reported mismatches: %q", msgs)
	}
}

func TestAllMismatchesReported(t *testing.T) {
	a, b := sample(), sample()
	b.Name = "compute"
	b.Entries[0].Offset = 12
	b.Entries[1].Size = 0
	b.Origin[1].ID = 7
	b.Data[1] = 0
	b.Layers[0] = "api_dump"

	var col Collector
	c := col.Checker()
	Struct(c, "", &a, &b)

	want := []Mismatch{
		{Path: "Name", Detail: `"pipeline" != "compute"`},
		{Path: "Entries[0].Offset", Detail: "0 != 12"},
		{Path: "Entries[1].Size", Detail: "8 != 0"},
		{Path: "Origin[1].ID", Detail: "2 != 7"},
		{Path: "Data", Detail: "first difference at byte 1: 0x02 != 0x00"},
		{Path: "Layers[0]", Detail: `"validation" != "api_dump"`},
	}
	if diff := cmp.Diff(want, col.Mismatches); diff != "" {
		t.Errorf("mismatches (-want +got):\n%s", diff)
	}
	if got := c.Failures(); got != len(want) {
		t.Errorf("Failures = %d, want %d", got, len(want))
	}
}

func TestCountMismatchComparesSharedPrefix(t *testing.T) {
	a, b := sample(), sample()
	b.Entries = b.Entries[:1]
	b.Entries[0].ID = 100

	var msgs []string
	Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) })
	want := []string{
		"Entries: count 2 != 1",
		"Entries[0].ID: 1 != 100",
	}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestPresenceMismatch(t *testing.T) {
	a, b := sample(), sample()
	b.Extra = nil
	var msgs []string
	Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) })
	if diff := cmp.Diff([]string{"Extra: presence true != false"}, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}

	a.Extra = nil
	if !Equal(&a, &b, nil) {
		t.Errorf("two absent optionals compared unequal")
	}
}

func TestBlobSizeMismatchComparesSharedBytes(t *testing.T) {
	a, b := sample(), sample()
	b.DataSize = 2
	var msgs []string
	Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) })
	if diff := cmp.Diff([]string{"DataSize: 3 != 2"}, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}

	b.Data[1] = 50
	msgs = nil
	Equal(&a, &b, func(msg string) { msgs = append(msgs, msg) })
	want := []string{
		"DataSize: 3 != 2",
		"Data: first difference at byte 1: 0x2 != 0x32",
	}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestFloatBits(t *testing.T) {
	nan := float32(math.NaN())
	c := New(nil)
	Float(c, "nan", nan, nan)
	if c.Failures() != 0 {
		t.Errorf("identical NaNs compared unequal")
	}
	Float(c, "zero", float32(0), float32(math.Copysign(0, -1)))
	if c.Failures() != 1 {
		t.Errorf("+0 and -0 compared equal")
	}
	Floats(c, "v", []float64{1, 2}, []float64{1, 3})
	if c.Failures() != 2 {
		t.Errorf("Floats missed a difference")
	}
}

func TestBytes(t *testing.T) {
	var a, b [8]byte
	copy(a[:], "gpu\x00\x00\x01")
	copy(b[:], "gpu\x00")
	var msgs []string
	Bytes(New(func(m string) { msgs = append(msgs, m) }), "PipelineCacheUUID", a[:], b[:])
	want := []string{"PipelineCacheUUID: first difference at byte 5: 0x01 != 0x00"}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
}

func TestDiff(t *testing.T) {
	a, b := sample(), sample()
	b.Entries[1].Offset = 5
	b.Extra = nil

	var col Collector
	DiffInto(col.Checker().Field("info"), a, b)

	want := []Mismatch{
		{Path: "info.Entries[1].Offset", Detail: "4 != 5"},
		{Path: "info.Extra", Detail: "&{ID:9 Offset:0 Size:0} != <nil>"},
	}
	if diff := cmp.Diff(want, col.Mismatches); diff != "" {
		t.Errorf("mismatches (-want +got):\n%s", diff)
	}

	if !Diff(sample(), sample(), nil) {
		t.Errorf("Diff reported equal samples as different")
	}
}

func TestDiffFloatBits(t *testing.T) {
	nan := math.NaN()
	other := math.Float64frombits(math.Float64bits(nan) ^ 1)
	for _, tc := range []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "same NaN", a: nan, b: nan, want: true},
		{name: "NaN payloads", a: nan, b: other, want: false},
		{name: "signed zeros", a: 0, b: math.Copysign(0, -1), want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var msgs []string
			got := Diff(tc.a, tc.b, func(msg string) { msgs = append(msgs, msg) })
			if got != tc.want {
				t.Errorf("Diff(%v, %v) = %t (%q), want %t", tc.a, tc.b, got, msgs, tc.want)
			}
		})
	}

	a := struct{ F float32 }{0}
	b := struct{ F float32 }{float32(math.Copysign(0, -1))}
	if Diff(a, b, nil) {
		t.Errorf("Diff treated float32 +0 and -0 fields as equal")
	}
}
