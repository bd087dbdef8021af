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
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// All multi-byte integers travel big-endian, most significant byte first,
// independent of host byte order.

// PutBe8 writes a single byte.
func (s *Stream) PutBe8(v uint8) error {
	var b [1]byte
	b[0] = v
	_, err := s.Write(b[:])
	return err
}

// PutBe16 writes v as two big-endian bytes.
func (s *Stream) PutBe16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// PutBe32 writes v as four big-endian bytes.
func (s *Stream) PutBe32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// PutBe64 writes v as eight big-endian bytes.
func (s *Stream) PutBe64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := s.Write(b[:])
	return err
}

// GetBe8 reads a single byte.
func (s *Stream) GetBe8() (uint8, error) {
	var b [1]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetBe16 reads two big-endian bytes.
func (s *Stream) GetBe16() (uint16, error) {
	var b [2]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// GetBe32 reads four big-endian bytes.
func (s *Stream) GetBe32() (uint32, error) {
	var b [4]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// GetBe64 reads eight big-endian bytes.
func (s *Stream) GetBe64() (uint64, error) {
	var b [8]byte
	if err := s.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// PutInt32 writes the two's complement bits of v.
func (s *Stream) PutInt32(v int32) error { return s.PutBe32(uint32(v)) }

// GetInt32 reads a value written by PutInt32.
func (s *Stream) GetInt32() (int32, error) {
	v, err := s.GetBe32()
	return int32(v), err
}

// PutInt64 writes the two's complement bits of v.
func (s *Stream) PutInt64(v int64) error { return s.PutBe64(uint64(v)) }

// GetInt64 reads a value written by PutInt64.
func (s *Stream) GetInt64() (int64, error) {
	v, err := s.GetBe64()
	return int64(v), err
}

// PutFloat32 writes the IEEE 754 bits of v. NaN payloads survive.
func (s *Stream) PutFloat32(v float32) error { return s.PutBe32(math.Float32bits(v)) }

// GetFloat32 reads a value written by PutFloat32.
func (s *Stream) GetFloat32() (float32, error) {
	v, err := s.GetBe32()
	return math.Float32frombits(v), err
}

// PutFloat64 writes the IEEE 754 bits of v.
func (s *Stream) PutFloat64(v float64) error { return s.PutBe64(math.Float64bits(v)) }

// GetFloat64 reads a value written by PutFloat64.
func (s *Stream) GetFloat64() (float64, error) {
	v, err := s.GetBe64()
	return math.Float64frombits(v), err
}

// PutInt writes any integer type at its natural width. Named enum, flag
// and handle types use it directly.
func PutInt[T constraints.Integer](s *Stream, v T) error {
	switch unsafe.Sizeof(v) {
	case 1:
		return s.PutBe8(uint8(v))
	case 2:
		return s.PutBe16(uint16(v))
	case 4:
		return s.PutBe32(uint32(v))
	default:
		return s.PutBe64(uint64(v))
	}
}

// GetInt reads a value written by PutInt into *dst. *dst is unchanged on
// error.
func GetInt[T constraints.Integer](s *Stream, dst *T) error {
	var (
		u   uint64
		err error
	)
	switch unsafe.Sizeof(*dst) {
	case 1:
		var v uint8
		v, err = s.GetBe8()
		u = uint64(v)
	case 2:
		var v uint16
		v, err = s.GetBe16()
		u = uint64(v)
	case 4:
		var v uint32
		v, err = s.GetBe32()
		u = uint64(v)
	default:
		u, err = s.GetBe64()
	}
	if err != nil {
		return err
	}
	*dst = T(u)
	return nil
}

// PutFloat writes any float type at its natural width.
func PutFloat[T constraints.Float](s *Stream, v T) error {
	if unsafe.Sizeof(v) == 4 {
		return s.PutFloat32(float32(v))
	}
	return s.PutFloat64(float64(v))
}

// GetFloat reads a value written by PutFloat into *dst.
func GetFloat[T constraints.Float](s *Stream, dst *T) error {
	if unsafe.Sizeof(*dst) == 4 {
		v, err := s.GetFloat32()
		if err != nil {
			return err
		}
		*dst = T(v)
		return nil
	}
	v, err := s.GetFloat64()
	if err != nil {
		return err
	}
	*dst = T(v)
	return nil
}

// PutInts writes a counted array of integers.
func PutInts[T constraints.Integer](s *Stream, v []T) error {
	if err := s.putLen(len(v)); err != nil {
		return err
	}
	for _, e := range v {
		if err := PutInt(s, e); err != nil {
			return err
		}
	}
	return nil
}

// GetInts reads a value written by PutInts into *dst, reusing its storage.
func GetInts[T constraints.Integer](s *Stream, dst *[]T) error {
	n, err := s.GetBe32()
	if err != nil {
		return err
	}
	v := growFor((*dst)[:0], n, s.Len())
	for i := uint32(0); i < n; i++ {
		var e T
		if err := GetInt(s, &e); err != nil {
			return err
		}
		v = append(v, e)
	}
	*dst = v
	return nil
}

// PutFloats writes a counted array of floats.
func PutFloats[T constraints.Float](s *Stream, v []T) error {
	if err := s.putLen(len(v)); err != nil {
		return err
	}
	for _, e := range v {
		if err := PutFloat(s, e); err != nil {
			return err
		}
	}
	return nil
}

// GetFloats reads a value written by PutFloats into *dst, reusing its
// storage.
func GetFloats[T constraints.Float](s *Stream, dst *[]T) error {
	n, err := s.GetBe32()
	if err != nil {
		return err
	}
	v := growFor((*dst)[:0], n, s.Len()/4)
	for i := uint32(0); i < n; i++ {
		var e T
		if err := GetFloat(s, &e); err != nil {
			return err
		}
		v = append(v, e)
	}
	*dst = v
	return nil
}

// putLen writes a u32 length or count prefix.
func (s *Stream) putLen(n int) error {
	if s.err != nil {
		return s.err
	}
	if uint64(n) > math.MaxUint32 {
		return s.fail(ErrTooLarge)
	}
	return s.PutBe32(uint32(n))
}

// PutString writes a u32 length followed by the bytes of v, with no
// terminator. The empty string is encoded as a zero length.
func (s *Stream) PutString(v string) error {
	if err := s.putLen(len(v)); err != nil {
		return err
	}
	_, err := s.Write([]byte(v))
	return err
}

// GetString reads a value written by PutString.
func (s *Stream) GetString() (string, error) {
	n, err := s.GetBe32()
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(s.Len()) {
		return "", s.fail(&UnderflowError{Requested: int(n), Available: s.Len()})
	}
	b, err := s.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PutBytes writes p verbatim, with no length prefix.
func (s *Stream) PutBytes(p []byte) error {
	_, err := s.Write(p)
	return err
}

// GetBytes fills p verbatim. It is the inverse of PutBytes.
func (s *Stream) GetBytes(p []byte) error {
	return s.ReadFull(p)
}

// PutStringArray writes a u32 count followed by each string as PutString.
func (s *Stream) PutStringArray(v []string) error {
	if err := s.putLen(len(v)); err != nil {
		return err
	}
	for _, str := range v {
		if err := s.PutString(str); err != nil {
			return err
		}
	}
	return nil
}

// GetStringArray reads a value written by PutStringArray. The result reuses
// the storage of dst.
func (s *Stream) GetStringArray(dst []string) ([]string, error) {
	n, err := s.GetBe32()
	if err != nil {
		return nil, err
	}
	dst = growFor(dst[:0], n, s.Len()/4)
	for i := uint32(0); i < n; i++ {
		str, err := s.GetString()
		if err != nil {
			return nil, err
		}
		dst = append(dst, str)
	}
	return dst, nil
}

// growFor ensures dst has room for n elements, but never preallocates more
// than bound; a corrupt count then fails with an underflow instead of a huge
// allocation.
func growFor[T any](dst []T, n uint32, bound int) []T {
	want := int(min(uint64(n), uint64(max(bound, 0))))
	if cap(dst)-len(dst) >= want {
		return dst
	}
	grown := make([]T, len(dst), len(dst)+want)
	copy(grown, dst)
	return grown
}
