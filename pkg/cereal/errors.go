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
	"errors"
	"fmt"
)

var (
	// ErrUnderflow matches any *UnderflowError via errors.Is.
	ErrUnderflow = errors.New("cereal: stream underflow")

	// ErrAllocation matches any *AllocationError via errors.Is.
	ErrAllocation = errors.New("cereal: stream allocation failed")

	// ErrShortBuffer is returned when caller-provided storage is smaller
	// than the payload it must receive.
	ErrShortBuffer = errors.New("cereal: destination buffer too small")

	// ErrTooLarge is returned when a length or count does not fit the
	// 32-bit wire representation.
	ErrTooLarge = errors.New("cereal: length exceeds wire limit")
)

// UnderflowError is returned when a read asks for bytes that were never
// written. It always indicates a desynchronized marshal/unmarshal pair and is
// never a benign end of stream; in particular it does not match io.EOF.
type UnderflowError struct {
	// Requested is the number of bytes the read asked for.
	Requested int

	// Available is the number of unread bytes at the time of the read.
	Available int
}

// Error implements error.Error.
func (e *UnderflowError) Error() string {
	return fmt.Sprintf("cereal: stream underflow: read of %d bytes with %d available", e.Requested, e.Available)
}

// Is implements errors.Is.
func (e *UnderflowError) Is(target error) bool {
	return target == ErrUnderflow
}

// AllocationError is returned when the stream cannot grow to hold a write.
// The stream is unusable afterwards.
type AllocationError struct {
	// Requested is the size of the failed write.
	Requested int

	// Buffered is the number of bytes the stream held.
	Buffered int

	// Limit is the configured maximum size, zero if unlimited.
	Limit int
}

// Error implements error.Error.
func (e *AllocationError) Error() string {
	if e.Limit == 0 {
		return fmt.Sprintf("cereal: cannot grow stream holding %d bytes by %d bytes", e.Buffered, e.Requested)
	}
	return fmt.Sprintf("cereal: cannot grow stream holding %d bytes by %d bytes: limit is %d", e.Buffered, e.Requested, e.Limit)
}

// Is implements errors.Is.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}
