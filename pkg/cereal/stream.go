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
	"io"
	"math"
)

// DefaultMaxSize is the limit applied by New. Command buffers are bounded
// well below this by the frame layer.
const DefaultMaxSize = 256 << 20

// Stream is an in-memory byte channel with independent read and write
// cursors. Bytes are read back in exactly the order they were written.
//
// Whenever the read cursor catches up with the write cursor, both cursors
// return to zero and the backing storage is truncated, so a stream that is
// drained regularly never grows beyond its largest in-flight payload.
//
// The first error returned by any operation is sticky: subsequent operations
// return it without touching the stream until Reset is called. A failed
// read or write leaves the channel desynchronized and nothing further can be
// interpreted.
//
// The zero value is an empty stream with no size limit. A Stream is not safe
// for concurrent use.
type Stream struct {
	// buf holds the written bytes. len(buf) is the write cursor.
	buf []byte

	// read is the read cursor. Invariant: 0 <= read <= len(buf).
	read int

	// limit is the maximum len(buf), or zero for none.
	limit int

	// err is the sticky error.
	err error
}

// New returns an empty stream limited to DefaultMaxSize.
func New() *Stream {
	return &Stream{limit: DefaultMaxSize}
}

// NewLimited returns an empty stream that fails writes growing it past limit
// bytes. A limit of zero disables the check.
func NewLimited(limit int) *Stream {
	return &Stream{limit: limit}
}

// Err returns the sticky error, if any.
func (s *Stream) Err() error {
	return s.err
}

// Len returns the number of unread bytes.
func (s *Stream) Len() int {
	return len(s.buf) - s.read
}

// Reset discards all buffered bytes and clears any sticky error. Capacity is
// retained.
func (s *Stream) Reset() {
	s.buf = s.buf[:0]
	s.read = 0
	s.err = nil
}

// compact rewinds both cursors once the reader has caught up.
func (s *Stream) compact() {
	if s.read == len(s.buf) {
		s.buf = s.buf[:0]
		s.read = 0
	}
}

func (s *Stream) fail(err error) error {
	s.err = err
	return err
}

// Write appends p at the write cursor. It implements io.Writer; a short write
// only happens together with an *AllocationError.
func (s *Stream) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > math.MaxInt-len(s.buf) || (s.limit > 0 && len(s.buf)+len(p) > s.limit) {
		return 0, s.fail(&AllocationError{
			Requested: len(p),
			Buffered:  len(s.buf),
			Limit:     s.limit,
		})
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// ReadFull fills p from the read cursor. A read of zero bytes always
// succeeds. If fewer than len(p) bytes are unread, nothing is consumed and
// an *UnderflowError is returned.
func (s *Stream) ReadFull(p []byte) error {
	if s.err != nil {
		return s.err
	}
	if len(p) == 0 {
		return nil
	}
	if len(p) > s.Len() {
		return s.fail(&UnderflowError{Requested: len(p), Available: s.Len()})
	}
	s.read += copy(p, s.buf[s.read:])
	s.compact()
	return nil
}

// ReadBytes consumes n bytes and returns them in a newly allocated slice.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, s.fail(&UnderflowError{Requested: n, Available: s.Len()})
	}
	p := make([]byte, n)
	if err := s.ReadFull(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Skip consumes n bytes without copying them.
func (s *Stream) Skip(n int) error {
	if s.err != nil {
		return s.err
	}
	if n < 0 || n > s.Len() {
		return s.fail(&UnderflowError{Requested: n, Available: s.Len()})
	}
	s.read += n
	s.compact()
	return nil
}

// Peek returns the next n unread bytes without consuming them. The result
// aliases the stream and is only valid until the next operation.
func (s *Stream) Peek(n int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if n < 0 || n > s.Len() {
		return nil, &UnderflowError{Requested: n, Available: s.Len()}
	}
	return s.buf[s.read : s.read+n], nil
}

// WriteTo drains all unread bytes into w. It implements io.WriterTo. An
// empty stream does not call w.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.Len() == 0 {
		return 0, nil
	}
	n, err := w.Write(s.buf[s.read:])
	s.read += n
	s.compact()
	if err == nil && s.Len() > 0 {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
