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

package gencereal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const header = "package demo\n\n"

func generate(t *testing.T, src string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "types.go")
	if err := os.WriteFile(in, []byte(header+src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	out, err := NewGenerator([]string{in}, filepath.Join(dir, "out.go"), "demo").Generate()
	return string(out), err
}

func TestGenerateShapes(t *testing.T) {
	src := `
type Flags uint32

type Handle uint64

// +cereal
type Extent struct {
	Width, Height uint32
}

// Info is a test struct.
//
// +cereal
type Info struct {
	Flags    Flags
	Scale    float32
	Name     string
	Size     Extent
	Next     *Extent
	UUID     [16]byte
	Weights  [2]float32
	Corners  [4]Extent
	Regions  []Extent
	Maybe    []Extent ` + "`cereal:\"optional\"`" + `
	Handles  []Handle
	Levels   []float32
	Layers   []string
	DataSize uint64
	Data     []byte ` + "`cereal:\"blob=DataSize\"`" + `
}

type unmarked struct {
	C chan int
}
`
	out, err := generate(t, src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"// Automatically generated cereal implementation. See tools/cerealgen.",
		"_ cereal.Marshallable = (*Extent)(nil)",
		"_ cereal.Marshallable = (*Info)(nil)",
		"if err := cereal.PutInt(s, x.Flags); err != nil {",
		"if err = cereal.GetFloat(s, &x.Scale); err != nil {",
		"if x.Name, err = s.GetString(); err != nil {",
		"if err := x.Size.Marshal(s); err != nil {",
		"if err = cereal.GetOptional(s, &x.Next); err != nil {",
		"if err := s.PutBytes(x.UUID[:]); err != nil {",
		"if err := cereal.PutFloat(s, x.Weights[i]); err != nil {",
		"if err = cereal.GetFixedArray(s, x.Corners[:]); err != nil {",
		"if err := cereal.PutArray(s, x.Regions); err != nil {",
		"if err = cereal.GetOptionalArray(s, &x.Maybe); err != nil {",
		"if err := cereal.PutInts(s, x.Handles); err != nil {",
		"if x.Layers, err = s.GetStringArray(x.Layers); err != nil {",
		"if err := cereal.PutBlob(s, x.Data, uint64(x.DataSize)); err != nil {",
		"if x.Data, err = cereal.ReadBlob(s, x.Data, uint64(x.DataSize)); err != nil {",
		`check.Bytes(c, "UUID", x.UUID[:], y.UUID[:])`,
		`check.OptionalCounted(c, "Maybe", x.Maybe, y.Maybe)`,
		`check.Blob(c, "Data", x.Data, y.Data, min(uint64(x.DataSize), uint64(y.DataSize)))`,
		"dst.Next = deepcopy.Optional(p, x.Next)",
		"x.Corners[i].DeepCopy(p, &dst.Corners[i])",
		"dst.Levels = deepcopy.Scalars(p, x.Levels)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unmarked") {
		t.Errorf("generated code mentions an unmarked type:\n%s", out)
	}
	if strings.Index(out, "PutInt(s, x.Flags)") > strings.Index(out, "PutBlob(s, x.Data") {
		t.Errorf("fields emitted out of declaration order:\n%s", out)
	}
}

func TestGenerateErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no marked types",
			src:  "type A struct{ X uint32 }\n",
			want: "no type is marked",
		},
		{
			name: "blob before size",
			src:  "// +cereal\ntype A struct {\n\tData []byte `cereal:\"blob=N\"`\n\tN uint32\n}\n",
			want: "must be declared before it",
		},
		{
			name: "blob sized by string",
			src:  "// +cereal\ntype A struct {\n\tN string\n\tData []byte `cereal:\"blob=N\"`\n}\n",
			want: "must be an integer",
		},
		{
			name: "blob on non-bytes",
			src:  "// +cereal\ntype A struct {\n\tN uint32\n\tData []uint32 `cereal:\"blob=N\"`\n}\n",
			want: "must be []byte",
		},
		{
			name: "unknown tag",
			src:  "// +cereal\ntype A struct {\n\tN uint32 `cereal:\"packed\"`\n}\n",
			want: "unknown cereal tag option",
		},
		{
			name: "channel",
			src:  "// +cereal\ntype A struct {\n\tC chan int\n}\n",
			want: "cannot be marshaled",
		},
		{
			name: "pointer to scalar",
			src:  "// +cereal\ntype A struct {\n\tP *uint32\n}\n",
			want: "pointers must refer to +cereal structs",
		},
		{
			name: "unmarked struct",
			src:  "type B struct{ X uint32 }\n\n// +cereal\ntype A struct {\n\tB B\n}\n",
			want: "neither a scalar nor a +cereal struct",
		},
		{
			name: "embedded",
			src:  "// +cereal\ntype B struct{ X uint32 }\n\n// +cereal\ntype A struct {\n\tB\n}\n",
			want: "embedded fields",
		},
		{
			name: "optional scalar slice",
			src:  "// +cereal\ntype A struct {\n\tV []uint32 `cereal:\"optional\"`\n}\n",
			want: "optional applies only",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := generate(t, test.src)
			if err == nil {
				t.Fatalf("Generate succeeded, want error containing %q", test.want)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("Generate error = %v, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestNamedByteIsInteger(t *testing.T) {
	src := `
type Level uint8

// +cereal
type A struct {
	L     Level
	Raw   [4]byte
	Steps [4]Level
}
`
	out, err := generate(t, src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{
		"cereal.PutInt(s, x.L)",
		"s.PutBytes(x.Raw[:])",
		"cereal.PutInt(s, x.Steps[i])",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code is missing %q:\n%s", want, out)
		}
	}
}
