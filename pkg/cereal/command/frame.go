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

package command

import (
	"errors"
	"fmt"
	"io"

	"goldfish.dev/cereal/pkg/cereal"
)

const (
	// headerLength is the size of the opcode and length prefix.
	headerLength = 8

	// MaxFrameSize is the largest payload accepted in either direction.
	MaxFrameSize = 64 << 20
)

var (
	// ErrTrailingBytes is returned when a payload is not consumed exactly
	// by the unmarshal of its command.
	ErrTrailingBytes = errors.New("command: payload has trailing bytes")

	// ErrUnknownCommand is returned for opcodes or request types that are
	// not registered.
	ErrUnknownCommand = errors.New("command: unknown command")
)

// FrameTooLargeError is returned for payloads larger than MaxFrameSize.
type FrameTooLargeError struct {
	Op   Opcode
	Size uint64
}

// Error implements error.Error.
func (e *FrameTooLargeError) Error() string {
	return fmt.Sprintf("command: frame for opcode %d too large: size is %d, limit is %d", e.Op, e.Size, MaxFrameSize)
}

// WriteFrame writes a frame carrying all unread bytes of payload to w,
// draining payload.
func WriteFrame(w io.Writer, op Opcode, payload *cereal.Stream) error {
	if err := payload.Err(); err != nil {
		return err
	}
	n := payload.Len()
	if n > MaxFrameSize {
		return &FrameTooLargeError{Op: op, Size: uint64(n)}
	}
	var hdr cereal.Stream
	hdr.PutBe32(uint32(op))
	hdr.PutBe32(uint32(n))
	if _, err := hdr.WriteTo(w); err != nil {
		return err
	}
	_, err := payload.WriteTo(w)
	return err
}

// ReadFrame reads one frame from r, appending its payload to payload. It
// returns io.EOF only if r ended cleanly before the frame began; a frame cut
// short yields io.ErrUnexpectedEOF.
func ReadFrame(r io.Reader, payload *cereal.Stream) (Opcode, error) {
	var hdr [headerLength]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, err
	}
	var h cereal.Stream
	h.PutBytes(hdr[:])
	op, _ := h.GetBe32()
	size, _ := h.GetBe32()
	if size > MaxFrameSize {
		return 0, &FrameTooLargeError{Op: Opcode(op), Size: uint64(size)}
	}
	if _, err := io.CopyN(payload, r, int64(size)); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("reading %d byte payload of opcode %d: %w", size, op, err)
	}
	return Opcode(op), nil
}
