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

package gencereal

import (
	"fmt"
	"go/ast"
	"go/token"
	"reflect"
	"strconv"
	"strings"
)

// shape is the wire shape of a single struct field.
type shape int

const (
	shapeInt         shape = iota // integer, enum, flags or handle
	shapeFloat                    // float32 or float64
	shapeString                   // length-prefixed string
	shapeStruct                   // nested struct, marshaled in place
	shapeOptional                 // *T: presence flag then T
	shapeChars                    // [N]byte: raw bytes
	shapeIntArray                 // [N]integer
	shapeFloatArray               // [N]float
	shapeStructArray              // [N]T
	shapeCounted                  // []T: count then elements
	shapeInts                     // []integer
	shapeFloats                   // []float
	shapeStrings                  // []string
	shapeBlob                     // []byte sized by a sibling field
)

// field is a classified struct field.
type field struct {
	name  string
	shape shape

	// optional is set for counted arrays that distinguish nil from empty.
	optional bool

	// sizeField names the sibling carrying a blob's size.
	sizeField string

	pos token.Pos
}

// tagOptions are the parsed contents of a `cereal:"..."` struct tag.
type tagOptions struct {
	optional bool
	blob     string
}

func parseTag(lit *ast.BasicLit) (tagOptions, error) {
	var opts tagOptions
	if lit == nil {
		return opts, nil
	}
	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return opts, err
	}
	tag, ok := reflect.StructTag(raw).Lookup("cereal")
	if !ok {
		return opts, nil
	}
	for _, opt := range strings.Split(tag, ",") {
		switch {
		case opt == "optional":
			opts.optional = true
		case strings.HasPrefix(opt, "blob="):
			opts.blob = strings.TrimPrefix(opt, "blob=")
		case opt == "":
		default:
			return opts, fmt.Errorf("unknown cereal tag option %q", opt)
		}
	}
	return opts, nil
}

// scalarKind is the wire class of a named or builtin scalar type.
type scalarKind int

const (
	notScalar scalarKind = iota
	intScalar
	floatScalar
	stringScalar
	byteScalar
)

var builtins = map[string]scalarKind{
	"uint8":   byteScalar,
	"byte":    byteScalar,
	"int8":    intScalar,
	"uint16":  intScalar,
	"int16":   intScalar,
	"uint32":  intScalar,
	"int32":   intScalar,
	"uint64":  intScalar,
	"int64":   intScalar,
	"float32": floatScalar,
	"float64": floatScalar,
	"string":  stringScalar,
}

// scalar resolves an identifier through the package's type declarations to
// its wire class. Named byte types are integers; only the builtin byte is
// raw.
func (g *Generator) scalar(id *ast.Ident) scalarKind {
	seen := map[string]bool{}
	name := id.Name
	for depth := 0; ; depth++ {
		if k, ok := builtins[name]; ok {
			if k == byteScalar && depth > 0 {
				return intScalar
			}
			return k
		}
		under, ok := g.decls[name]
		if !ok || seen[name] {
			return notScalar
		}
		seen[name] = true
		next, ok := under.(*ast.Ident)
		if !ok {
			return notScalar
		}
		name = next.Name
	}
}

// isStruct reports whether e names a struct with generated methods: a
// +cereal struct in this package, or any type from another package.
func (g *Generator) isStruct(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Ident:
		_, ok := g.marked[t.Name]
		return ok
	case *ast.SelectorExpr:
		return true
	}
	return false
}

// classify determines the shape of one field.
func (g *Generator) classify(name string, typ ast.Expr, tag *ast.BasicLit) (field, error) {
	f := field{name: name, pos: typ.Pos()}
	opts, err := parseTag(tag)
	if err != nil {
		return f, err
	}
	if opts.blob != "" {
		at, ok := typ.(*ast.ArrayType)
		if !ok || at.Len != nil || !isByte(at.Elt) {
			return f, fmt.Errorf("blob field %s must be []byte", name)
		}
		f.shape = shapeBlob
		f.sizeField = opts.blob
		return f, nil
	}

	switch t := typ.(type) {
	case *ast.Ident:
		switch g.scalar(t) {
		case intScalar, byteScalar:
			f.shape = shapeInt
		case floatScalar:
			f.shape = shapeFloat
		case stringScalar:
			if t.Name != "string" {
				return f, fmt.Errorf("field %s: named string types are not supported", name)
			}
			f.shape = shapeString
		default:
			if !g.isStruct(t) {
				return f, fmt.Errorf("field %s: type %s is neither a scalar nor a +cereal struct", name, t.Name)
			}
			f.shape = shapeStruct
		}
	case *ast.SelectorExpr:
		f.shape = shapeStruct
	case *ast.StarExpr:
		if !g.isStruct(t.X) {
			return f, fmt.Errorf("field %s: pointers must refer to +cereal structs", name)
		}
		f.shape = shapeOptional
	case *ast.ArrayType:
		return g.classifyArray(f, t, opts)
	default:
		return f, fmt.Errorf("field %s: %T fields cannot be marshaled", name, typ)
	}
	if opts.optional && f.shape != shapeOptional {
		return f, fmt.Errorf("field %s: optional applies only to pointers and slices", name)
	}
	return f, nil
}

func (g *Generator) classifyArray(f field, t *ast.ArrayType, opts tagOptions) (field, error) {
	fixed := t.Len != nil
	if fixed {
		if _, ok := t.Len.(*ast.Ellipsis); ok {
			return f, fmt.Errorf("field %s: array length must be explicit", f.name)
		}
	}
	if opts.optional && fixed {
		return f, fmt.Errorf("field %s: fixed arrays cannot be optional", f.name)
	}
	var kind scalarKind
	if id, ok := t.Elt.(*ast.Ident); ok {
		kind = g.scalar(id)
	}
	switch {
	case fixed && kind == byteScalar:
		f.shape = shapeChars
	case fixed && (kind == intScalar):
		f.shape = shapeIntArray
	case fixed && kind == floatScalar:
		f.shape = shapeFloatArray
	case fixed && g.isStruct(t.Elt):
		f.shape = shapeStructArray
	case !fixed && (kind == intScalar || kind == byteScalar):
		f.shape = shapeInts
	case !fixed && kind == floatScalar:
		f.shape = shapeFloats
	case !fixed && kind == stringScalar:
		f.shape = shapeStrings
	case !fixed && g.isStruct(t.Elt):
		f.shape = shapeCounted
		f.optional = opts.optional
		return f, nil
	default:
		return f, fmt.Errorf("field %s: unsupported array element type", f.name)
	}
	if opts.optional {
		return f, fmt.Errorf("field %s: optional applies only to arrays of structs", f.name)
	}
	return f, nil
}

func isByte(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}
