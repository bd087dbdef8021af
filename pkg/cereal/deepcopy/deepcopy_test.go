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

package deepcopy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type node struct {
	ID       uint32
	Children []node
	Next     *node
	Size     uint64
	Data     []byte
	Names    []string
}

func (x *node) DeepCopy(p *Pool, dst *node) {
	*dst = *x
	dst.Children = Array(p, x.Children)
	dst.Next = Optional(p, x.Next)
	dst.Data = Blob(p, x.Data, x.Size)
	dst.Names = Strings(p, x.Names)
}

func tree() *node {
	return &node{
		ID:       1,
		Children: []node{{ID: 2}, {ID: 3, Next: &node{ID: 4}}},
		Next:     &node{ID: 5, Children: []node{}},
		Size:     2,
		Data:     []byte{7, 8},
		Names:    []string{"a", "b"},
	}
}

func TestCopyIsIndependent(t *testing.T) {
	var p Pool
	src := tree()
	dst := Copy(&p, src)
	if diff := cmp.Diff(tree(), dst); diff != "" {
		t.Fatalf("copy differs (-want +got):\n%s", diff)
	}

	dst.Children[1].Next.ID = 40
	dst.Data[0] = 70
	dst.Names[0] = "z"
	dst.Next.ID = 50
	if diff := cmp.Diff(tree(), src); diff != "" {
		t.Errorf("mutating the copy changed the source (-want +got):\n%s", diff)
	}
}

func TestEmptyVersusNil(t *testing.T) {
	var p Pool
	dst := Copy(&p, tree())
	if dst.Next.Children == nil {
		t.Errorf("empty array copied as nil")
	}
	if dst.Children[0].Children != nil {
		t.Errorf("nil array copied as non-nil")
	}
	if Copy[node](&p, nil) != nil {
		t.Errorf("nil copied as non-nil")
	}
}

func TestFreeAll(t *testing.T) {
	var p Pool
	Copy(&p, tree())
	if p.Outstanding() == 0 {
		t.Fatalf("no allocations accounted")
	}
	if got, want := p.Bytes(), 2; got != want {
		t.Errorf("Bytes = %d, want %d", got, want)
	}
	p.FreeAll()
	if p.Outstanding() != 0 || p.Bytes() != 0 {
		t.Errorf("after FreeAll: %d allocations, %d bytes", p.Outstanding(), p.Bytes())
	}
}

func TestAlloc(t *testing.T) {
	var p Pool
	a := p.Alloc(16)
	b := p.Alloc(16)
	for i := range a {
		a[i] = 0xff
	}
	for _, v := range b {
		if v != 0 {
			t.Fatalf("neighbouring allocations overlap")
		}
	}
	if cap(a) != 16 {
		t.Errorf("cap = %d, appends would clobber the next allocation", cap(a))
	}
	big := p.Alloc(largeAlloc + 1)
	if len(big) != largeAlloc+1 {
		t.Errorf("large allocation has length %d", len(big))
	}
	p.FreeAll()
	c := p.Alloc(16)
	for _, v := range c {
		if v != 0 {
			t.Fatalf("recycled chunk not cleared")
		}
	}
}

func TestBlobBoundedBySize(t *testing.T) {
	var p Pool
	if got := Blob(&p, []byte{1, 2, 3, 4}, 2); !cmp.Equal(got, []byte{1, 2}) {
		t.Errorf("Blob = %v, want [1 2]", got)
	}
}

func TestReflect(t *testing.T) {
	src := map[string][]int{"x": {1, 2}}
	dst := Reflect(src)
	dst["x"][0] = 100
	if src["x"][0] != 1 {
		t.Errorf("reflective copy shares storage")
	}
}
