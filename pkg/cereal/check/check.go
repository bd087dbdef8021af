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

// Package check compares two instances of a marshallable structure and
// reports every field that differs.
//
// A comparison never stops at the first mismatch. Each differing leaf is
// reported once through the callback with its field path, so a single run
// surfaces all discrepancies. Comparison follows the same shape rules as the
// wire encoding: optional values compare presence first, counted arrays
// compare counts first, and blobs compare only the bytes their size field
// covers.
package check

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// OnFailFunc receives one human readable message per mismatch.
type OnFailFunc func(msg string)

// Mismatch describes a single differing leaf.
type Mismatch struct {
	// Path is the dotted field path from the compared root, with array
	// indices in brackets, e.g. "QueueCreateInfos[2].QueuePriorities".
	Path string

	// Detail describes the difference.
	Detail string
}

// String formats the mismatch as passed to OnFailFunc.
func (m Mismatch) String() string {
	if m.Path == "" {
		return m.Detail
	}
	return m.Path + ": " + m.Detail
}

// report is shared by a checker and all of its children.
type report struct {
	sink  func(Mismatch)
	count int
}

// Checker tracks the current field path during a comparison. Children made
// by Field and Index share the parent's callback and failure count.
type Checker struct {
	r    *report
	path string
}

// New returns a checker that calls onFail for each mismatch. A nil onFail
// only counts.
func New(onFail OnFailFunc) *Checker {
	return &Checker{r: &report{sink: func(m Mismatch) {
		if onFail != nil {
			onFail(m.String())
		}
	}}}
}

// Collector accumulates mismatches in the order they are found.
type Collector struct {
	Mismatches []Mismatch
}

// Checker returns a checker appending to c.
func (c *Collector) Checker() *Checker {
	return &Checker{r: &report{sink: func(m Mismatch) {
		c.Mismatches = append(c.Mismatches, m)
	}}}
}

// Failures returns the number of mismatches reported so far through this
// checker or any of its relatives.
func (c *Checker) Failures() int {
	return c.r.count
}

// Path returns the field path of c.
func (c *Checker) Path() string {
	return c.path
}

// Field returns a checker for the named member of c's value. An empty name
// returns c.
func (c *Checker) Field(name string) *Checker {
	if name == "" {
		return c
	}
	if c.path == "" {
		return &Checker{r: c.r, path: name}
	}
	return &Checker{r: c.r, path: c.path + "." + name}
}

// Index returns a checker for element i of c's value.
func (c *Checker) Index(i int) *Checker {
	return &Checker{r: c.r, path: c.path + "[" + strconv.Itoa(i) + "]"}
}

// Failf reports a mismatch at c's path.
func (c *Checker) Failf(format string, args ...any) {
	c.r.count++
	c.r.sink(Mismatch{Path: c.path, Detail: fmt.Sprintf(format, args...)})
}

// Equaler is satisfied by *T when T has a generated CheckEqual method.
type Equaler[T any] interface {
	*T
	CheckEqual(other *T, c *Checker)
}

// Equal compares a and b field by field, calling onFail once per mismatch,
// and reports whether they matched.
func Equal[T any, P Equaler[T]](a, b *T, onFail OnFailFunc) bool {
	c := New(onFail)
	Struct[T, P](c, "", a, b)
	return c.Failures() == 0
}

// Scalar compares two integers, enums, flags or handles.
func Scalar[T constraints.Integer | ~bool](c *Checker, name string, a, b T) {
	if a != b {
		c.Field(name).Failf("%v != %v", a, b)
	}
}

// Float compares two floats by bit pattern, so identical NaNs match and
// +0 differs from -0.
func Float[T constraints.Float](c *Checker, name string, a, b T) {
	var same bool
	if unsafe.Sizeof(a) == 4 {
		same = math.Float32bits(float32(a)) == math.Float32bits(float32(b))
	} else {
		same = math.Float64bits(float64(a)) == math.Float64bits(float64(b))
	}
	if !same {
		c.Field(name).Failf("%v != %v", a, b)
	}
}

// String compares two strings by content.
func String(c *Checker, name string, a, b string) {
	if a != b {
		c.Field(name).Failf("%q != %q", a, b)
	}
}

// Strings compares two counted string arrays.
func Strings(c *Checker, name string, a, b []string) {
	fc := c.Field(name)
	n := count(fc, len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			fc.Index(i).Failf("%q != %q", a[i], b[i])
		}
	}
}

// Bytes compares two fixed byte arrays, such as names and UUIDs, and reports
// the first differing offset.
func Bytes(c *Checker, name string, a, b []byte) {
	fc := c.Field(name)
	if len(a) != len(b) {
		fc.Failf("length %d != %d", len(a), len(b))
		return
	}
	if i := firstDiff(a, b); i >= 0 {
		fc.Failf("first difference at byte %d: %#02x != %#02x", i, a[i], b[i])
	}
}

func firstDiff(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// Blob compares the first size bytes of two blobs. The size field itself is
// compared separately by the caller, so a and b are only inspected when both
// sizes agree.
func Blob(c *Checker, name string, a, b []byte, size uint64) {
	fc := c.Field(name)
	if uint64(len(a)) < size || uint64(len(b)) < size {
		fc.Failf("blob of %d bytes backed by %d and %d", size, len(a), len(b))
		return
	}
	if i := firstDiff(a[:size], b[:size]); i >= 0 {
		fc.Failf("first difference at byte %d: %#02x != %#02x", i, a[i], b[i])
	}
}

// Optional compares presence and, when both are present, the values.
func Optional[T any, P Equaler[T]](c *Checker, name string, a, b *T) {
	fc := c.Field(name)
	switch {
	case a == nil && b == nil:
	case a == nil || b == nil:
		fc.Failf("presence %t != %t", a != nil, b != nil)
	default:
		P(a).CheckEqual(b, fc)
	}
}

// Struct compares two nested structures in place.
func Struct[T any, P Equaler[T]](c *Checker, name string, a, b *T) {
	P(a).CheckEqual(b, c.Field(name))
}

// Counted compares the counts of two arrays and each pair of elements up to
// the shorter length.
func Counted[T any, P Equaler[T]](c *Checker, name string, a, b []T) {
	fc := c.Field(name)
	n := count(fc, len(a), len(b))
	elems[T, P](fc, a[:n], b[:n])
}

// count reports a count mismatch and returns the length of the shared
// prefix, which is still compared element by element.
func count(c *Checker, a, b int) int {
	if a != b {
		c.Failf("count %d != %d", a, b)
	}
	return min(a, b)
}

// OptionalCounted compares presence of two optional arrays, then as Counted.
func OptionalCounted[T any, P Equaler[T]](c *Checker, name string, a, b []T) {
	if (a == nil) != (b == nil) {
		c.Field(name).Failf("presence %t != %t", a != nil, b != nil)
		return
	}
	Counted[T, P](c, name, a, b)
}

// Fixed compares two arrays of statically known length element by element.
func Fixed[T any, P Equaler[T]](c *Checker, name string, a, b []T) {
	elems[T, P](c.Field(name), a, b)
}

func elems[T any, P Equaler[T]](c *Checker, a, b []T) {
	for i := range a {
		P(&a[i]).CheckEqual(&b[i], c.Index(i))
	}
}

// Scalars compares two counted arrays of integers.
func Scalars[T constraints.Integer](c *Checker, name string, a, b []T) {
	fc := c.Field(name)
	n := count(fc, len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			fc.Index(i).Failf("%v != %v", a[i], b[i])
		}
	}
}

// Floats compares two counted arrays of floats by bit pattern.
func Floats[T constraints.Float](c *Checker, name string, a, b []T) {
	fc := c.Field(name)
	n := count(fc, len(a), len(b))
	for i := range n {
		Float(fc.Index(i), "", a[i], b[i])
	}
}
