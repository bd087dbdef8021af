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

// Package command frames cereal-encoded API calls for transport between a
// guest encoder and a host decoder.
//
// Each call travels as one frame: a big-endian u32 opcode, a big-endian u32
// payload length, then the payload produced by the request's Marshal. The
// reply to a call is a frame with the same opcode whose payload is an i32
// status followed, on success, by the marshaled reply.
package command

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/btree"
	"goldfish.dev/cereal/pkg/cereal"
)

// Opcode identifies a command on the wire.
type Opcode uint32

// Command describes one API call.
type Command struct {
	// Op is the wire opcode.
	Op Opcode

	// Name is the API name, e.g. "vkCreateInstance".
	Name string

	// NewRequest returns an empty request value.
	NewRequest func() cereal.Marshallable

	// NewReply returns an empty reply value. It is nil for commands that
	// only return a status.
	NewReply func() cereal.Marshallable
}

// String implements fmt.Stringer.String.
func (c *Command) String() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.Op)
}

// Registry indexes commands by opcode, name and request type. It is safe for
// concurrent use; registration normally happens from init functions.
type Registry struct {
	mu    sync.RWMutex
	ops   *btree.BTreeG[*Command]
	names map[string]*Command
	types map[reflect.Type]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops: btree.NewG(8, func(a, b *Command) bool {
			return a.Op < b.Op
		}),
		names: make(map[string]*Command),
		types: make(map[reflect.Type]*Command),
	}
}

// Register adds c. It panics if the opcode, name or request type is already
// registered, or if c has no request factory.
func (r *Registry) Register(c Command) {
	if c.NewRequest == nil {
		panic(fmt.Sprintf("command %s has no request factory", &c))
	}
	t := reflect.TypeOf(c.NewRequest())

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.ops.Get(&Command{Op: c.Op}); ok {
		panic(fmt.Sprintf("duplicate opcode %d: first is %s, second is %s", c.Op, prev.Name, c.Name))
	}
	if _, ok := r.names[c.Name]; ok {
		panic(fmt.Sprintf("duplicate command name %q", c.Name))
	}
	if prev, ok := r.types[t]; ok {
		panic(fmt.Sprintf("request type %v used by both %s and %s", t, prev.Name, c.Name))
	}
	cp := &c
	r.ops.ReplaceOrInsert(cp)
	r.names[c.Name] = cp
	r.types[t] = cp
}

// Lookup returns the command registered for op.
func (r *Registry) Lookup(op Opcode) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ops.Get(&Command{Op: op})
}

// LookupName returns the command registered under name.
func (r *Registry) LookupName(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.names[name]
	return c, ok
}

// ForRequest returns the command whose request type is the dynamic type of
// req.
func (r *Registry) ForRequest(req cereal.Marshaler) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.types[reflect.TypeOf(req)]
	return c, ok
}

// Each calls fn for every command in ascending opcode order until fn
// returns false.
func (r *Registry) Each(fn func(*Command) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ops.Ascend(func(c *Command) bool {
		return fn(c)
	})
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ops.Len()
}
