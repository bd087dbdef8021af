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
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// floatBits compares float32 and float64 leaves by bit pattern, as Float
// does. Named float types are compared with ==.
var floatBits = cmp.Options{
	cmp.Comparer(func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }),
	cmp.Comparer(func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }),
}

// diffReporter implements cmp.Reporter, forwarding each unequal leaf to a
// checker.
type diffReporter struct {
	c    *Checker
	path cmp.Path
}

func (r *diffReporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *diffReporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func (r *diffReporter) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}
	vx, vy := r.path.Last().Values()
	(&Checker{r: r.c.r, path: joinPath(r.c.path, pathString(r.path))}).Failf("%s != %s", describe(vx), describe(vy))
}

// pathString renders p as Field.Sub[3].Leaf, dropping the root type and
// pointer indirections.
func pathString(p cmp.Path) string {
	var sb strings.Builder
	for _, step := range p {
		switch s := step.(type) {
		case cmp.StructField:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name())
		case cmp.SliceIndex:
			k, _ := s.SplitKeys()
			if k < 0 {
				_, k = s.SplitKeys()
			}
			fmt.Fprintf(&sb, "[%d]", k)
		case cmp.MapIndex:
			fmt.Fprintf(&sb, "[%v]", s.Key())
		}
	}
	return sb.String()
}

func joinPath(base, rel string) string {
	switch {
	case base == "":
		return rel
	case rel == "" || strings.HasPrefix(rel, "["):
		return base + rel
	default:
		return base + "." + rel
	}
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "<missing>"
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		if v.IsNil() {
			return "<nil>"
		}
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	}
	if v.CanInterface() {
		return fmt.Sprintf("%+v", v.Interface())
	}
	return v.String()
}

// Diff compares a and b reflectively and calls onFail once per differing
// leaf. It needs no generated code, which makes it suitable for ad hoc
// values and for validating generated CheckEqual methods. float32 and
// float64 values compare by bit pattern, so NaNs match only with equal
// payloads and +0 differs from -0; a nil slice differs from an empty one. It
// reports whether the values matched.
func Diff(a, b any, onFail OnFailFunc, opts ...cmp.Option) bool {
	c := New(onFail)
	DiffInto(c, a, b, opts...)
	return c.Failures() == 0
}

// DiffInto is Diff reporting into an existing checker at its path.
func DiffInto(c *Checker, a, b any, opts ...cmp.Option) {
	r := &diffReporter{c: c}
	opts = append([]cmp.Option{floatBits, cmp.Reporter(r)}, opts...)
	cmp.Equal(a, b, opts...)
}
