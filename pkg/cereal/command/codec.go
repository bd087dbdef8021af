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
	"fmt"
	"io"

	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/log"
)

// Encoder writes commands as frames. It is the guest side of the protocol.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w   io.Writer
	reg *Registry

	// s is reused for every frame; it is empty between calls.
	s *cereal.Stream
}

// NewEncoder returns an encoder writing frames to w. reg resolves request
// types to opcodes.
func NewEncoder(w io.Writer, reg *Registry) *Encoder {
	return &Encoder{w: w, reg: reg, s: cereal.NewLimited(MaxFrameSize)}
}

// Encode writes req as a frame with the opcode registered for its type.
func (e *Encoder) Encode(req cereal.Marshaler) (*Command, error) {
	c, ok := e.reg.ForRequest(req)
	if !ok {
		return nil, fmt.Errorf("%w: no opcode for request type %T", ErrUnknownCommand, req)
	}
	return c, e.EncodeOp(c.Op, req)
}

// EncodeOp writes m as a frame with opcode op. A nil m sends an empty
// payload.
func (e *Encoder) EncodeOp(op Opcode, m cereal.Marshaler) error {
	e.s.Reset()
	if m != nil {
		if err := m.Marshal(e.s); err != nil {
			e.s.Reset()
			return fmt.Errorf("marshal %T for opcode %d: %w", m, op, err)
		}
	}
	if log.IsLogging(log.Debug) {
		log.Debugf("send [op %d] %d bytes", op, e.s.Len())
	}
	if err := WriteFrame(e.w, op, e.s); err != nil {
		e.s.Reset()
		return err
	}
	return nil
}

// Decoder reads frames written by an Encoder. It is the host side of the
// protocol. A Decoder is not safe for concurrent use.
type Decoder struct {
	r   io.Reader
	reg *Registry
	s   *cereal.Stream
}

// NewDecoder returns a decoder reading frames from r.
func NewDecoder(r io.Reader, reg *Registry) *Decoder {
	return &Decoder{r: r, reg: reg, s: cereal.NewLimited(MaxFrameSize)}
}

// Next reads the next frame. The returned stream holds its payload and is
// only valid until the following call.
func (d *Decoder) Next() (Opcode, *cereal.Stream, error) {
	d.s.Reset()
	op, err := ReadFrame(d.r, d.s)
	if err != nil {
		return 0, nil, err
	}
	if log.IsLogging(log.Debug) {
		log.Debugf("recv [op %d] %d bytes", op, d.s.Len())
	}
	return op, d.s, nil
}

// Decode reads the next frame and unmarshals it into a new request of the
// registered command. An unregistered opcode yields an error wrapping
// ErrUnknownCommand together with the opcode; the frame has been consumed
// and decoding may continue.
func (d *Decoder) Decode() (*Command, cereal.Marshallable, error) {
	op, s, err := d.Next()
	if err != nil {
		return nil, nil, err
	}
	c, ok := d.reg.Lookup(op)
	if !ok {
		return &Command{Op: op}, nil, fmt.Errorf("%w: opcode %d", ErrUnknownCommand, op)
	}
	req := c.NewRequest()
	if err := Unmarshal(s, req); err != nil {
		return c, nil, fmt.Errorf("%v: %w", c, err)
	}
	return c, req, nil
}

// Unmarshal decodes m from s and requires that s is then fully consumed.
func Unmarshal(s *cereal.Stream, m cereal.Unmarshaler) error {
	if err := m.Unmarshal(s); err != nil {
		return err
	}
	if n := s.Len(); n != 0 {
		return fmt.Errorf("%w: %d unread after %T", ErrTrailingBytes, n, m)
	}
	return nil
}
