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

// Package analysis implements common functionality used to exercise
// cerealgen output: random population of +cereal structs, and round-trip
// verification through a stream.
package analysis

import (
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
	"strings"

	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/check"
)

// Options bound the values produced by RandomizeValue.
type Options struct {
	// MaxLen bounds the length of strings, counted arrays and blobs.
	MaxLen int

	// MaxDepth bounds the nesting of optional pointers.
	MaxDepth int

	// NilChance is the probability in [0, 1] that an optional pointer or
	// slice is left nil.
	NilChance float64
}

// DefaultOptions are used when RandomizeValue is given nil options.
var DefaultOptions = Options{
	MaxLen:    8,
	MaxDepth:  4,
	NilChance: 0.25,
}

// RandomizeValue assigns random values to every field reachable from x,
// which must be a pointer to a +cereal struct. Blob fields receive a random
// number of bytes and their size field is set to match, so the result
// always marshals.
func RandomizeValue(x any, r *rand.Rand, opts *Options) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic(fmt.Sprintf("RandomizeValue called with %T; pass a non-nil pointer", x))
	}
	if opts == nil {
		opts = &DefaultOptions
	}
	f := filler{r: r, opts: opts}
	f.fill(v.Elem(), 0)
}

type filler struct {
	r    *rand.Rand
	opts *Options
}

func (f *filler) length() int {
	return f.r.IntN(f.opts.MaxLen + 1)
}

func (f *filler) leaveNil(depth int) bool {
	return depth >= f.opts.MaxDepth || f.r.Float64() < f.opts.NilChance
}

func (f *filler) fill(v reflect.Value, depth int) {
	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(f.r.IntN(2) == 1)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		v.SetInt(int64(f.r.Uint64()))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		v.SetUint(f.r.Uint64())
	case reflect.Float32:
		v.SetFloat(float64(math.Float32frombits(f.r.Uint32())))
	case reflect.Float64:
		v.SetFloat(math.Float64frombits(f.r.Uint64()))
	case reflect.String:
		var sb strings.Builder
		for n := f.length(); n > 0; n-- {
			sb.WriteByte(byte(' ' + f.r.IntN('~'-' '+1)))
		}
		v.SetString(sb.String())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			f.fill(v.Index(i), depth)
		}
	case reflect.Slice:
		if f.leaveNil(depth) {
			v.SetZero()
			return
		}
		s := reflect.MakeSlice(v.Type(), f.length(), f.opts.MaxLen)
		for i := 0; i < s.Len(); i++ {
			f.fill(s.Index(i), depth+1)
		}
		v.Set(s)
	case reflect.Pointer:
		if f.leaveNil(depth) {
			v.SetZero()
			return
		}
		p := reflect.New(v.Type().Elem())
		f.fill(p.Elem(), depth+1)
		v.Set(p)
	case reflect.Struct:
		f.fillStruct(v, depth)
	default:
		panic(fmt.Sprintf("type %v not allowed in a +cereal struct", v.Type()))
	}
}

func (f *filler) fillStruct(v reflect.Value, depth int) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		size, ok := blobSize(sf)
		if !ok {
			f.fill(v.Field(i), depth)
			continue
		}
		n := f.length()
		data := make([]byte, n)
		for j := range data {
			data[j] = byte(f.r.Uint32())
		}
		v.Field(i).SetBytes(data)
		sz := v.FieldByName(size)
		switch sz.Kind() {
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
			sz.SetInt(int64(n))
		default:
			sz.SetUint(uint64(n))
		}
	}
}

// blobSize returns the size field named by a `cereal:"blob=X"` tag.
func blobSize(sf reflect.StructField) (string, bool) {
	for _, opt := range strings.Split(sf.Tag.Get("cereal"), ",") {
		if size, ok := strings.CutPrefix(opt, "blob="); ok {
			return size, true
		}
	}
	return "", false
}

// Equaler is the method set cerealgen emits for every type.
type Equaler[T any] interface {
	cereal.Marshallable
	check.Equaler[T]
}

// Roundtrip marshals src, unmarshals the bytes into a fresh T and reports
// every field that differs through onFail. It returns the number of
// mismatches, or an error if the codec itself failed.
func Roundtrip[T any, P Equaler[T]](src *T, onFail check.OnFailFunc) (int, error) {
	dst := new(T)
	if err := cereal.Roundtrip(P(src), P(dst)); err != nil {
		return 0, err
	}
	c := check.New(onFail)
	P(src).CheckEqual(dst, c)
	return c.Failures(), nil
}
