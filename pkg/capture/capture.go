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

// Package capture defines the format of recorded command streams.
//
// A capture file is structured as follows:
//
//	magic    8 bytes, "cerealCF"
//	metalen  8 bytes, big-endian length of the metadata
//	metadata metalen bytes of JSON, a string to string map
//	body     the command frames, optionally zstd compressed
//
// The body is exactly what a command.Encoder writes, so a recording is made
// by teeing the encoder output into a Writer.
package capture

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/klauspost/compress/zstd"
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/command"
)

// maxMetadataSize is the size limit of metadata section.
const maxMetadataSize = 1 << 20

// Reserved metadata keys, set by the writer.
const (
	// TimestampKey records when the capture was started.
	TimestampKey = "_timestamp"

	// CompressionKey names the body compression, "zstd" or "none".
	CompressionKey = "_compression"
)

var magicHeader = []byte("cerealCF")

// ErrBadMagic is returned if the header does not match.
var ErrBadMagic = errors.New("bad magic header")

// ErrInvalidMetadataLength is returned if the metadata length is too large.
var ErrInvalidMetadataLength = fmt.Errorf("metadata length invalid, maximum size is %d", maxMetadataSize)

// ErrMetadataInvalid is returned if passed metadata is invalid.
var ErrMetadataInvalid = errors.New("metadata invalid, can't start with _")

// ErrLocked is returned by Create when another process is writing the file.
var ErrLocked = errors.New("capture file is locked by another writer")

// Writer writes a capture body. It must be closed to flush compression.
type Writer struct {
	body io.Writer
	zw   *zstd.Encoder
	done func() error
}

// NewWriter writes the header and metadata to w and returns a writer for the
// body. metadata may be nil; keys starting with "_" are reserved.
func NewWriter(w io.Writer, metadata map[string]string, compress bool) (*Writer, error) {
	meta := make(map[string]string, len(metadata)+2)
	for k, v := range metadata {
		if strings.HasPrefix(k, "_") {
			return nil, ErrMetadataInvalid
		}
		meta[k] = v
	}
	meta[TimestampKey] = time.Now().UTC().String()
	meta[CompressionKey] = "none"
	if compress {
		meta[CompressionKey] = "zstd"
	}

	b, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	if len(b) > maxMetadataSize {
		return nil, ErrInvalidMetadataLength
	}
	var hdr bytes.Buffer
	hdr.Write(magicHeader)
	binary.Write(&hdr, binary.BigEndian, uint64(len(b)))
	hdr.Write(b)
	if _, err := w.Write(hdr.Bytes()); err != nil {
		return nil, err
	}

	if !compress {
		return &Writer{body: w}, nil
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Writer{body: zw, zw: zw}, nil
}

// Write implements io.Writer.Write.
func (w *Writer) Write(p []byte) (int, error) {
	return w.body.Write(p)
}

// WriteFrame appends a single frame.
func (w *Writer) WriteFrame(op command.Opcode, payload *cereal.Stream) error {
	return command.WriteFrame(w, op, payload)
}

// Close flushes the body. The underlying writer is closed only when the
// Writer was made by Create.
func (w *Writer) Close() error {
	var err error
	if w.zw != nil {
		err = w.zw.Close()
	}
	if w.done != nil {
		if derr := w.done(); err == nil {
			err = derr
		}
	}
	return err
}

// Create creates the capture file at path and locks it for writing until
// the Writer is closed. An existing file is truncated unless another
// writer holds its lock.
func Create(path string, metadata map[string]string, compress bool) (*Writer, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %q: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrLocked)
	}
	f, err := os.Create(path)
	if err != nil {
		lock.Unlock()
		return nil, err
	}
	w, err := NewWriter(f, metadata, compress)
	if err != nil {
		f.Close()
		lock.Unlock()
		return nil, err
	}
	w.done = func() error {
		err := f.Close()
		if uerr := lock.Unlock(); err == nil {
			err = uerr
		}
		return err
	}
	return w, nil
}

func readMetadata(r io.Reader) (map[string]string, error) {
	b := make([]byte, len(magicHeader))
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	if !bytes.Equal(b, magicHeader) {
		return nil, ErrBadMagic
	}
	var n uint64
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	if n > maxMetadataSize {
		return nil, ErrInvalidMetadataLength
	}
	b = make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	meta := make(map[string]string)
	if err := json.Unmarshal(b, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// Reader reads the frames of a capture.
type Reader struct {
	// Metadata is the metadata section, including reserved keys.
	Metadata map[string]string

	body io.Reader
	zr   *zstd.Decoder
	done func() error
}

// NewReader reads the header and metadata from r.
func NewReader(r io.Reader) (*Reader, error) {
	meta, err := readMetadata(r)
	if err != nil {
		return nil, err
	}
	cr := &Reader{Metadata: meta, body: r}
	switch c := meta[CompressionKey]; c {
	case "", "none":
	case "zstd":
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		cr.body, cr.zr = zr, zr
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}
	return cr, nil
}

// Open opens the capture file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	r.done = f.Close
	return r, nil
}

// Next reads the next frame, appending its payload to payload. It returns
// io.EOF after the last frame.
func (r *Reader) Next(payload *cereal.Stream) (command.Opcode, error) {
	return command.ReadFrame(r.body, payload)
}

// Body returns the frame stream, for use with a command.Decoder.
func (r *Reader) Body() io.Reader {
	return r.body
}

// Close releases the reader.
func (r *Reader) Close() error {
	if r.zr != nil {
		r.zr.Close()
	}
	if r.done != nil {
		return r.done()
	}
	return nil
}
