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

// Package primitive defines marshallable newtypes of the scalar types, for
// use wherever a cereal.Marshallable is expected: command replies, counted
// arrays built with cereal.PutArray, and optional scalars.
package primitive

import (
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/check"
	"goldfish.dev/cereal/pkg/cereal/deepcopy"
)

// Uint8 is a marshallable uint8.
type Uint8 uint8

// Marshal implements cereal.Marshaler.Marshal.
func (v *Uint8) Marshal(s *cereal.Stream) error {
	return s.PutBe8(uint8(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Uint8) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe8()
	*v = Uint8(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Uint8) CheckEqual(o *Uint8, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Uint8) DeepCopy(_ *deepcopy.Pool, dst *Uint8) {
	*dst = *v
}

// Uint16 is a marshallable uint16.
type Uint16 uint16

// Marshal implements cereal.Marshaler.Marshal.
func (v *Uint16) Marshal(s *cereal.Stream) error {
	return s.PutBe16(uint16(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Uint16) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe16()
	*v = Uint16(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Uint16) CheckEqual(o *Uint16, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Uint16) DeepCopy(_ *deepcopy.Pool, dst *Uint16) {
	*dst = *v
}

// Uint32 is a marshallable uint32.
type Uint32 uint32

// Marshal implements cereal.Marshaler.Marshal.
func (v *Uint32) Marshal(s *cereal.Stream) error {
	return s.PutBe32(uint32(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Uint32) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe32()
	*v = Uint32(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Uint32) CheckEqual(o *Uint32, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Uint32) DeepCopy(_ *deepcopy.Pool, dst *Uint32) {
	*dst = *v
}

// Uint64 is a marshallable uint64.
type Uint64 uint64

// Marshal implements cereal.Marshaler.Marshal.
func (v *Uint64) Marshal(s *cereal.Stream) error {
	return s.PutBe64(uint64(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Uint64) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe64()
	*v = Uint64(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Uint64) CheckEqual(o *Uint64, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Uint64) DeepCopy(_ *deepcopy.Pool, dst *Uint64) {
	*dst = *v
}

// Int8 is a marshallable int8.
type Int8 int8

// Marshal implements cereal.Marshaler.Marshal.
func (v *Int8) Marshal(s *cereal.Stream) error {
	return s.PutBe8(uint8(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Int8) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe8()
	*v = Int8(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Int8) CheckEqual(o *Int8, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Int8) DeepCopy(_ *deepcopy.Pool, dst *Int8) {
	*dst = *v
}

// Int16 is a marshallable int16.
type Int16 int16

// Marshal implements cereal.Marshaler.Marshal.
func (v *Int16) Marshal(s *cereal.Stream) error {
	return s.PutBe16(uint16(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Int16) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe16()
	*v = Int16(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Int16) CheckEqual(o *Int16, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Int16) DeepCopy(_ *deepcopy.Pool, dst *Int16) {
	*dst = *v
}

// Bool32 is a boolean carried as a u32, zero for false.
type Bool32 uint32

// Marshal implements cereal.Marshaler.Marshal.
func (v *Bool32) Marshal(s *cereal.Stream) error {
	return s.PutBe32(uint32(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Bool32) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetBe32()
	*v = Bool32(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Bool32) CheckEqual(o *Bool32, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Bool32) DeepCopy(_ *deepcopy.Pool, dst *Bool32) {
	*dst = *v
}

// Bool returns whether v is non-zero.
func (v Bool32) Bool() bool {
	return v != 0
}

// FromBool returns the Bool32 for b.
func FromBool(b bool) Bool32 {
	if b {
		return 1
	}
	return 0
}

// Int32 is a marshallable int32.
type Int32 int32

// Marshal implements cereal.Marshaler.Marshal.
func (v *Int32) Marshal(s *cereal.Stream) error {
	return s.PutInt32(int32(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Int32) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetInt32()
	*v = Int32(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Int32) CheckEqual(o *Int32, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Int32) DeepCopy(_ *deepcopy.Pool, dst *Int32) {
	*dst = *v
}

// Int64 is a marshallable int64.
type Int64 int64

// Marshal implements cereal.Marshaler.Marshal.
func (v *Int64) Marshal(s *cereal.Stream) error {
	return s.PutInt64(int64(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Int64) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetInt64()
	*v = Int64(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Int64) CheckEqual(o *Int64, c *check.Checker) {
	check.Scalar(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Int64) DeepCopy(_ *deepcopy.Pool, dst *Int64) {
	*dst = *v
}

// Float32 is a marshallable float32.
type Float32 float32

// Marshal implements cereal.Marshaler.Marshal.
func (v *Float32) Marshal(s *cereal.Stream) error {
	return s.PutFloat32(float32(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Float32) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetFloat32()
	*v = Float32(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Float32) CheckEqual(o *Float32, c *check.Checker) {
	check.Float(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Float32) DeepCopy(_ *deepcopy.Pool, dst *Float32) {
	*dst = *v
}

// Float64 is a marshallable float64.
type Float64 float64

// Marshal implements cereal.Marshaler.Marshal.
func (v *Float64) Marshal(s *cereal.Stream) error {
	return s.PutFloat64(float64(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *Float64) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetFloat64()
	*v = Float64(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *Float64) CheckEqual(o *Float64, c *check.Checker) {
	check.Float(c, "", *v, *o)
}

// DeepCopy implements deepcopy.Copier.
func (v *Float64) DeepCopy(_ *deepcopy.Pool, dst *Float64) {
	*dst = *v
}

// String is a marshallable string.
type String string

// Marshal implements cereal.Marshaler.Marshal.
func (v *String) Marshal(s *cereal.Stream) error {
	return s.PutString(string(*v))
}

// Unmarshal implements cereal.Unmarshaler.Unmarshal.
func (v *String) Unmarshal(s *cereal.Stream) error {
	x, err := s.GetString()
	*v = String(x)
	return err
}

// CheckEqual implements check.Equaler.
func (v *String) CheckEqual(o *String, c *check.Checker) {
	check.String(c, "", string(*v), string(*o))
}

// DeepCopy implements deepcopy.Copier.
func (v *String) DeepCopy(_ *deepcopy.Pool, dst *String) {
	*dst = *v
}

// Allocate returns a pointer to a copy of v, for optional scalar fields.
func Allocate[T any](v T) *T {
	return &v
}
