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

// Package deepcopy duplicates marshallable structures into storage owned by
// a Pool, so that a decoded command can be retained after the stream it came
// from has been reused.
//
// Copies share nothing with their source. Byte storage is carved from
// recycled chunks and handed back in one step by FreeAll; memory obtained
// from a pool must not be used after FreeAll.
package deepcopy

import (
	"sync"

	mdeepcopy "github.com/mohae/deepcopy"
)

const (
	// chunkSize is the size of the slabs small byte allocations come from.
	chunkSize = 4096

	// largeAlloc is the size above which byte allocations bypass chunks.
	largeAlloc = chunkSize / 4
)

var chunkPool = sync.Pool{
	New: func() any {
		b := make([]byte, chunkSize)
		return &b
	},
}

// Pool owns the storage of deep copies. The zero value is ready to use. A
// Pool is not safe for concurrent use.
type Pool struct {
	chunks []*[]byte
	cur    []byte

	objects int
	bytes   int
}

// Alloc returns n zeroed bytes owned by p.
func (p *Pool) Alloc(n int) []byte {
	p.objects++
	p.bytes += n
	if n == 0 {
		return []byte{}
	}
	if n > largeAlloc {
		return make([]byte, n)
	}
	if len(p.cur) < n {
		c := chunkPool.Get().(*[]byte)
		p.chunks = append(p.chunks, c)
		p.cur = (*c)[:chunkSize]
	}
	b := p.cur[:n:n]
	p.cur = p.cur[n:]
	clear(b)
	return b
}

// Outstanding returns the number of allocations made since the last FreeAll.
func (p *Pool) Outstanding() int {
	return p.objects
}

// Bytes returns the number of bytes allocated since the last FreeAll.
func (p *Pool) Bytes() int {
	return p.bytes
}

// FreeAll releases everything allocated from p at once.
func (p *Pool) FreeAll() {
	for _, c := range p.chunks {
		chunkPool.Put(c)
	}
	p.chunks = nil
	p.cur = nil
	p.objects = 0
	p.bytes = 0
}

// Object returns a new zero T accounted to p.
func Object[T any](p *Pool) *T {
	p.objects++
	return new(T)
}

// Copier is satisfied by *T when T has a generated DeepCopy method. DeepCopy
// writes a copy of the receiver into dst, allocating nested storage from p.
type Copier[T any] interface {
	*T
	DeepCopy(p *Pool, dst *T)
}

// Copy returns a deep copy of src owned by p.
func Copy[T any, P Copier[T]](p *Pool, src *T) *T {
	return Optional[T, P](p, src)
}

// Optional copies an optional nested structure. A nil src yields nil.
func Optional[T any, P Copier[T]](p *Pool, src *T) *T {
	if src == nil {
		return nil
	}
	dst := Object[T](p)
	P(src).DeepCopy(p, dst)
	return dst
}

// Array copies a counted array element by element. A nil src yields nil and
// an empty src yields an empty, non-nil slice.
func Array[T any, P Copier[T]](p *Pool, src []T) []T {
	if src == nil {
		return nil
	}
	p.objects++
	dst := make([]T, len(src))
	for i := range src {
		P(&src[i]).DeepCopy(p, &dst[i])
	}
	return dst
}

// Scalars copies a counted array of plain values.
func Scalars[E any](p *Pool, src []E) []E {
	if src == nil {
		return nil
	}
	p.objects++
	return append(make([]E, 0, len(src)), src...)
}

// Bytes copies all of src.
func Bytes(p *Pool, src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := p.Alloc(len(src))
	copy(dst, src)
	return dst
}

// Blob copies the first size bytes of src, the extent named by the blob's
// size field.
func Blob(p *Pool, src []byte, size uint64) []byte {
	if src == nil {
		return nil
	}
	n := min(size, uint64(len(src)))
	dst := p.Alloc(int(n))
	copy(dst, src[:n])
	return dst
}

// Strings copies a string array. The strings themselves are immutable and
// are shared.
func Strings(p *Pool, src []string) []string {
	return Scalars(p, src)
}

// Reflect returns a deep copy of v made by reflection. It serves types with
// no generated DeepCopy method; the result is not owned by any pool.
func Reflect[T any](v T) T {
	c, _ := mdeepcopy.Copy(v).(T)
	return c
}
