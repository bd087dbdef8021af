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

// Package gencereal implements the cerealgen code generator.
//
// Structs whose declaration comment contains a "// +cereal" line get four
// methods: Marshal and Unmarshal against a *cereal.Stream, CheckEqual for the
// structural checker, and DeepCopy into a deepcopy.Pool. Fields are encoded
// in declaration order; their wire shape follows from the Go type:
//
//	uint32, MyEnum            big-endian integer of the natural width
//	float32, float64          IEEE 754 bits
//	string                    u32 length and bytes
//	T (a +cereal struct)      T's fields in place
//	*T                        u8 presence flag, then T
//	[N]byte                   N raw bytes
//	[N]T                      N elements, no prefix
//	[]T, []uint32, []string   u32 count, then the elements
//
// Struct tags refine the shape: `cereal:"optional"` on a []T distinguishes a
// nil slice from an empty one, and `cereal:"blob=Size"` on a []byte sends
// exactly Size raw bytes, where Size is an earlier integer field.
package gencereal

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

const (
	cerealImport   = "goldfish.dev/cereal/pkg/cereal"
	checkImport    = "goldfish.dev/cereal/pkg/cereal/check"
	deepcopyImport = "goldfish.dev/cereal/pkg/cereal/deepcopy"
)

// Generator drives code generation for a single invocation of cerealgen.
type Generator struct {
	// inputs are the Go source files to scan.
	inputs []string

	// output is the path of the generated file.
	output string

	// pkg is the package clause of the generated file.
	pkg string

	// decls maps every type declared in the inputs to its type expression.
	decls map[string]ast.Expr

	// marked holds the +cereal structs, by name.
	marked map[string]*ast.StructType

	// order lists marked struct names in source order.
	order []string

	fset *token.FileSet
}

// NewGenerator returns a generator reading srcs and writing out.
func NewGenerator(srcs []string, out, pkg string) *Generator {
	return &Generator{
		inputs: srcs,
		output: out,
		pkg:    pkg,
		decls:  make(map[string]ast.Expr),
		marked: make(map[string]*ast.StructType),
		fset:   token.NewFileSet(),
	}
}

// Run generates code and writes it to the output file.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	return os.WriteFile(g.output, src, 0644)
}

// Generate parses the inputs and returns the formatted generated source.
func (g *Generator) Generate() ([]byte, error) {
	for _, path := range g.inputs {
		f, err := parser.ParseFile(g.fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("input %q can't be parsed: %w", path, err)
		}
		g.collect(f)
	}
	if len(g.order) == 0 {
		return nil, fmt.Errorf("cerealgen invoked on %v, but no type is marked with \"// +cereal\"", g.inputs)
	}

	var b sourceBuffer
	b.emit("// Automatically generated cereal implementation. See tools/cerealgen.\n\n")
	b.emit("package %s\n\n", g.pkg)
	b.emit("import (\n")
	b.inIndent(func() {
		b.emit("%q\n", cerealImport)
		b.emit("%q\n", checkImport)
		b.emit("%q\n", deepcopyImport)
	})
	b.emit(")\n\n")

	b.emit("// Marshallable types defined by this file.\n")
	b.emit("var (\n")
	b.inIndent(func() {
		for _, name := range g.order {
			b.emit("_ cereal.Marshallable = (*%s)(nil)\n", name)
		}
	})
	b.emit(")\n")

	for _, name := range g.order {
		fields, err := g.fields(name)
		if err != nil {
			return nil, err
		}
		t := &typeGenerator{name: name, fields: fields}
		t.emitMarshal(&b)
		t.emitUnmarshal(&b)
		t.emitCheckEqual(&b)
		t.emitDeepCopy(&b)
	}

	out, err := imports.Process(g.output, b.bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, b.bytes())
	}
	return out, nil
}

// collect records the type declarations of f, and the marked structs.
func (g *Generator) collect(f *ast.File) {
	for _, decl := range f.Decls {
		gdecl, ok := decl.(*ast.GenDecl)
		if !ok || gdecl.Tok != token.TYPE {
			continue
		}
		marked := hasMarker(gdecl.Doc)
		for _, spec := range gdecl.Specs {
			ts := spec.(*ast.TypeSpec)
			g.decls[ts.Name.Name] = ts.Type
			st, ok := ts.Type.(*ast.StructType)
			if !ok || !(marked || hasMarker(ts.Doc)) {
				continue
			}
			g.marked[ts.Name.Name] = st
			g.order = append(g.order, ts.Name.Name)
		}
	}
}

func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if c.Text == "// +cereal" {
			return true
		}
	}
	return false
}

// fields classifies every field of the named struct and validates blob size
// references.
func (g *Generator) fields(name string) ([]field, error) {
	var fs []field
	seen := make(map[string]shape)
	for _, f := range g.marked[name].Fields.List {
		if len(f.Names) == 0 {
			return nil, g.errorf(f.Pos(), "%s: embedded fields are not supported", name)
		}
		for _, n := range f.Names {
			cf, err := g.classify(n.Name, f.Type, f.Tag)
			if err != nil {
				return nil, g.errorf(f.Pos(), "%s: %v", name, err)
			}
			if cf.shape == shapeBlob {
				sz, ok := seen[cf.sizeField]
				if !ok {
					return nil, g.errorf(f.Pos(), "%s: blob %s is sized by %s, which must be declared before it", name, cf.name, cf.sizeField)
				}
				if sz != shapeInt {
					return nil, g.errorf(f.Pos(), "%s: blob size field %s must be an integer", name, cf.sizeField)
				}
			}
			seen[cf.name] = cf.shape
			fs = append(fs, cf)
		}
	}
	return fs, nil
}

func (g *Generator) errorf(pos token.Pos, format string, args ...any) error {
	return fmt.Errorf("%v: %s", g.fset.Position(pos), fmt.Sprintf(format, args...))
}

// sourceBuffer accumulates generated source with indentation.
type sourceBuffer struct {
	indent int
	b      bytes.Buffer
}

func (b *sourceBuffer) emit(format string, args ...any) {
	for i := 0; i < b.indent; i++ {
		b.b.WriteByte('\t')
	}
	fmt.Fprintf(&b.b, format, args...)
}

func (b *sourceBuffer) inIndent(body func()) {
	b.indent++
	body()
	b.indent--
}

func (b *sourceBuffer) bytes() []byte {
	return b.b.Bytes()
}
