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
	"fmt"
	"math"
)

// Marshaler is implemented by types that can write themselves to a stream.
type Marshaler interface {
	// Marshal writes the fields of the receiver in declaration order.
	Marshal(s *Stream) error
}

// Unmarshaler is implemented by types that can read themselves from a
// stream. Unmarshal consumes exactly the bytes the matching Marshal wrote.
type Unmarshaler interface {
	Unmarshal(s *Stream) error
}

// Marshallable is a type with a matched Marshal/Unmarshal pair.
type Marshallable interface {
	Marshaler
	Unmarshaler
}

// Ptr is satisfied by *T when *T is Marshallable. It lets the helpers below
// operate on values of T stored inline in slices and structs.
type Ptr[T any] interface {
	*T
	Marshallable
}

// Presence flags preceding optional payloads.
const (
	absent  = 0
	present = 1
)

func (s *Stream) getPresence() (bool, error) {
	flag, err := s.GetBe8()
	if err != nil {
		return false, err
	}
	return flag != absent, nil
}

// PutOptional writes a one byte presence flag and, when v is non-nil, the
// marshaled value.
func PutOptional[T any, P Ptr[T]](s *Stream, v *T) error {
	if v == nil {
		return s.PutBe8(absent)
	}
	if err := s.PutBe8(present); err != nil {
		return err
	}
	return P(v).Marshal(s)
}

// GetOptional reads a value written by PutOptional into *dst. If the flag is
// clear *dst is set to nil. Otherwise the value is unmarshaled into the
// existing *dst when there is one and into a fresh T when there is not.
func GetOptional[T any, P Ptr[T]](s *Stream, dst **T) error {
	ok, err := s.getPresence()
	if err != nil {
		return err
	}
	if !ok {
		*dst = nil
		return nil
	}
	if *dst == nil {
		*dst = new(T)
	}
	return P(*dst).Unmarshal(s)
}

// PutArray writes a u32 element count followed by each element.
func PutArray[T any, P Ptr[T]](s *Stream, elems []T) error {
	if err := s.putLen(len(elems)); err != nil {
		return err
	}
	return PutFixedArray[T, P](s, elems)
}

// GetArray reads a value written by PutArray into *dst, reusing its storage.
// Elements are unmarshaled into zeroed values.
func GetArray[T any, P Ptr[T]](s *Stream, dst *[]T) error {
	n, err := s.GetBe32()
	if err != nil {
		return err
	}
	elems := growFor((*dst)[:0], n, s.Len())
	for i := uint32(0); i < n; i++ {
		var zero T
		elems = append(elems, zero)
		if err := P(&elems[i]).Unmarshal(s); err != nil {
			return fmt.Errorf("element %d of %d: %w", i, n, err)
		}
	}
	*dst = elems
	return nil
}

// PutOptionalArray writes a presence flag followed, for a non-nil slice, by
// PutArray. A nil slice and an empty slice are distinguishable.
func PutOptionalArray[T any, P Ptr[T]](s *Stream, elems []T) error {
	if elems == nil {
		return s.PutBe8(absent)
	}
	if err := s.PutBe8(present); err != nil {
		return err
	}
	return PutArray[T, P](s, elems)
}

// GetOptionalArray reads a value written by PutOptionalArray. A present but
// empty array yields a non-nil empty slice.
func GetOptionalArray[T any, P Ptr[T]](s *Stream, dst *[]T) error {
	ok, err := s.getPresence()
	if err != nil {
		return err
	}
	if !ok {
		*dst = nil
		return nil
	}
	if *dst == nil {
		*dst = []T{}
	}
	return GetArray[T, P](s, dst)
}

// PutFixedArray writes each element with no count prefix. The reader must
// know the length statically.
func PutFixedArray[T any, P Ptr[T]](s *Stream, elems []T) error {
	for i := range elems {
		if err := P(&elems[i]).Marshal(s); err != nil {
			return err
		}
	}
	return nil
}

// GetFixedArray unmarshals len(elems) elements in place.
func GetFixedArray[T any, P Ptr[T]](s *Stream, elems []T) error {
	for i := range elems {
		if err := P(&elems[i]).Unmarshal(s); err != nil {
			return err
		}
	}
	return nil
}

// PutBlob writes the first size bytes of data verbatim. The size is not
// encoded; it travels in a sibling field marshaled separately.
func PutBlob(s *Stream, data []byte, size uint64) error {
	if s.err != nil {
		return s.err
	}
	if size > uint64(len(data)) {
		return s.fail(fmt.Errorf("%w: blob of %d bytes backed by %d", ErrShortBuffer, size, len(data)))
	}
	return s.PutBytes(data[:size])
}

// GetBlob fills the first size bytes of dst. The caller owns dst and must
// have allocated at least size bytes; a shorter dst is reported as
// ErrShortBuffer without consuming anything.
func GetBlob(s *Stream, dst []byte, size uint64) error {
	if s.err != nil {
		return s.err
	}
	if size > uint64(len(dst)) {
		return s.fail(fmt.Errorf("%w: blob of %d bytes into %d", ErrShortBuffer, size, len(dst)))
	}
	return s.ReadFull(dst[:size])
}

// ReadBlob is GetBlob for decoders that may not know the size in advance:
// dst is filled in place when it can hold size bytes, otherwise a new slice
// is allocated. A size beyond the unread bytes fails with an underflow before
// anything is allocated.
func ReadBlob(s *Stream, dst []byte, size uint64) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if size > uint64(s.Len()) {
		return nil, s.fail(&UnderflowError{Requested: int(min(size, math.MaxInt)), Available: s.Len()})
	}
	if uint64(len(dst)) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]
	if err := s.ReadFull(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Roundtrip marshals src into a fresh stream and unmarshals it into dst. It
// fails if the two sides consume different byte counts.
func Roundtrip(src Marshaler, dst Unmarshaler) error {
	s := New()
	if err := src.Marshal(s); err != nil {
		return fmt.Errorf("marshal %T: %w", src, err)
	}
	written := s.Len()
	if err := dst.Unmarshal(s); err != nil {
		return fmt.Errorf("unmarshal %T: %w", dst, err)
	}
	if s.Len() != 0 {
		return fmt.Errorf("unmarshal %T consumed %d of %d bytes", dst, written-s.Len(), written)
	}
	return nil
}
