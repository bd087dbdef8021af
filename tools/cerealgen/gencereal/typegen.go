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

// typeGenerator emits the methods of one +cereal struct. The receiver is
// always x; CheckEqual compares against y.
type typeGenerator struct {
	name   string
	fields []field
}

// emitCheck emits "if err := <call>; err != nil { return err }".
func emitCheck(b *sourceBuffer, decl, call string) {
	b.emit("if err %s %s; err != nil {\n", decl, call)
	b.inIndent(func() {
		b.emit("return err\n")
	})
	b.emit("}\n")
}

func (t *typeGenerator) emitMarshal(b *sourceBuffer) {
	b.emit("\n// Marshal implements cereal.Marshaler.Marshal.\n")
	b.emit("func (x *%s) Marshal(s *cereal.Stream) error {\n", t.name)
	b.inIndent(func() {
		for _, f := range t.fields {
			x := "x." + f.name
			switch f.shape {
			case shapeInt:
				emitCheck(b, ":=", "cereal.PutInt(s, "+x+")")
			case shapeFloat:
				emitCheck(b, ":=", "cereal.PutFloat(s, "+x+")")
			case shapeString:
				emitCheck(b, ":=", "s.PutString("+x+")")
			case shapeStruct:
				emitCheck(b, ":=", x+".Marshal(s)")
			case shapeOptional:
				emitCheck(b, ":=", "cereal.PutOptional(s, "+x+")")
			case shapeChars:
				emitCheck(b, ":=", "s.PutBytes("+x+"[:])")
			case shapeIntArray:
				b.emit("for i := range %s {\n", x)
				b.inIndent(func() { emitCheck(b, ":=", "cereal.PutInt(s, "+x+"[i])") })
				b.emit("}\n")
			case shapeFloatArray:
				b.emit("for i := range %s {\n", x)
				b.inIndent(func() { emitCheck(b, ":=", "cereal.PutFloat(s, "+x+"[i])") })
				b.emit("}\n")
			case shapeStructArray:
				emitCheck(b, ":=", "cereal.PutFixedArray(s, "+x+"[:])")
			case shapeCounted:
				if f.optional {
					emitCheck(b, ":=", "cereal.PutOptionalArray(s, "+x+")")
				} else {
					emitCheck(b, ":=", "cereal.PutArray(s, "+x+")")
				}
			case shapeInts:
				emitCheck(b, ":=", "cereal.PutInts(s, "+x+")")
			case shapeFloats:
				emitCheck(b, ":=", "cereal.PutFloats(s, "+x+")")
			case shapeStrings:
				emitCheck(b, ":=", "s.PutStringArray("+x+")")
			case shapeBlob:
				emitCheck(b, ":=", "cereal.PutBlob(s, "+x+", uint64(x."+f.sizeField+"))")
			}
		}
		b.emit("return nil\n")
	})
	b.emit("}\n")
}

func (t *typeGenerator) emitUnmarshal(b *sourceBuffer) {
	b.emit("\n// Unmarshal implements cereal.Unmarshaler.Unmarshal.\n")
	b.emit("func (x *%s) Unmarshal(s *cereal.Stream) (err error) {\n", t.name)
	b.inIndent(func() {
		for _, f := range t.fields {
			x := "x." + f.name
			switch f.shape {
			case shapeInt:
				emitCheck(b, "=", "cereal.GetInt(s, &"+x+")")
			case shapeFloat:
				emitCheck(b, "=", "cereal.GetFloat(s, &"+x+")")
			case shapeString:
				b.emit("if %s, err = s.GetString(); err != nil {\n", x)
				b.inIndent(func() { b.emit("return err\n") })
				b.emit("}\n")
			case shapeStruct:
				emitCheck(b, "=", x+".Unmarshal(s)")
			case shapeOptional:
				emitCheck(b, "=", "cereal.GetOptional(s, &"+x+")")
			case shapeChars:
				emitCheck(b, "=", "s.GetBytes("+x+"[:])")
			case shapeIntArray:
				b.emit("for i := range %s {\n", x)
				b.inIndent(func() { emitCheck(b, "=", "cereal.GetInt(s, &"+x+"[i])") })
				b.emit("}\n")
			case shapeFloatArray:
				b.emit("for i := range %s {\n", x)
				b.inIndent(func() { emitCheck(b, "=", "cereal.GetFloat(s, &"+x+"[i])") })
				b.emit("}\n")
			case shapeStructArray:
				emitCheck(b, "=", "cereal.GetFixedArray(s, "+x+"[:])")
			case shapeCounted:
				if f.optional {
					emitCheck(b, "=", "cereal.GetOptionalArray(s, &"+x+")")
				} else {
					emitCheck(b, "=", "cereal.GetArray(s, &"+x+")")
				}
			case shapeInts:
				emitCheck(b, "=", "cereal.GetInts(s, &"+x+")")
			case shapeFloats:
				emitCheck(b, "=", "cereal.GetFloats(s, &"+x+")")
			case shapeStrings:
				b.emit("if %s, err = s.GetStringArray(%s); err != nil {\n", x, x)
				b.inIndent(func() { b.emit("return err\n") })
				b.emit("}\n")
			case shapeBlob:
				b.emit("if %s, err = cereal.ReadBlob(s, %s, uint64(x.%s)); err != nil {\n", x, x, f.sizeField)
				b.inIndent(func() { b.emit("return err\n") })
				b.emit("}\n")
			}
		}
		b.emit("return nil\n")
	})
	b.emit("}\n")
}

func (t *typeGenerator) emitCheckEqual(b *sourceBuffer) {
	b.emit("\n// CheckEqual reports every field of x that differs from y.\n")
	b.emit("func (x *%s) CheckEqual(y *%s, c *check.Checker) {\n", t.name, t.name)
	b.inIndent(func() {
		for _, f := range t.fields {
			x, y := "x."+f.name, "y."+f.name
			switch f.shape {
			case shapeInt:
				b.emit("check.Scalar(c, %q, %s, %s)\n", f.name, x, y)
			case shapeFloat:
				b.emit("check.Float(c, %q, %s, %s)\n", f.name, x, y)
			case shapeString:
				b.emit("check.String(c, %q, %s, %s)\n", f.name, x, y)
			case shapeStruct:
				b.emit("check.Struct(c, %q, &%s, &%s)\n", f.name, x, y)
			case shapeOptional:
				b.emit("check.Optional(c, %q, %s, %s)\n", f.name, x, y)
			case shapeChars:
				b.emit("check.Bytes(c, %q, %s[:], %s[:])\n", f.name, x, y)
			case shapeIntArray:
				b.emit("check.Scalars(c, %q, %s[:], %s[:])\n", f.name, x, y)
			case shapeFloatArray:
				b.emit("check.Floats(c, %q, %s[:], %s[:])\n", f.name, x, y)
			case shapeStructArray:
				b.emit("check.Fixed(c, %q, %s[:], %s[:])\n", f.name, x, y)
			case shapeCounted:
				if f.optional {
					b.emit("check.OptionalCounted(c, %q, %s, %s)\n", f.name, x, y)
				} else {
					b.emit("check.Counted(c, %q, %s, %s)\n", f.name, x, y)
				}
			case shapeInts:
				b.emit("check.Scalars(c, %q, %s, %s)\n", f.name, x, y)
			case shapeFloats:
				b.emit("check.Floats(c, %q, %s, %s)\n", f.name, x, y)
			case shapeStrings:
				b.emit("check.Strings(c, %q, %s, %s)\n", f.name, x, y)
			case shapeBlob:
				// Sizes are compared as a scalar; contents over the shared size.
				b.emit("check.Blob(c, %q, %s, %s, min(uint64(x.%s), uint64(y.%s)))\n", f.name, x, y, f.sizeField, f.sizeField)
			}
		}
	})
	b.emit("}\n")
}

func (t *typeGenerator) emitDeepCopy(b *sourceBuffer) {
	b.emit("\n// DeepCopy implements deepcopy.Copier.\n")
	b.emit("func (x *%s) DeepCopy(p *deepcopy.Pool, dst *%s) {\n", t.name, t.name)
	b.inIndent(func() {
		b.emit("*dst = *x\n")
		for _, f := range t.fields {
			x, d := "x."+f.name, "dst."+f.name
			switch f.shape {
			case shapeStruct:
				b.emit("%s.DeepCopy(p, &%s)\n", x, d)
			case shapeOptional:
				b.emit("%s = deepcopy.Optional(p, %s)\n", d, x)
			case shapeStructArray:
				b.emit("for i := range %s {\n", x)
				b.inIndent(func() { b.emit("%s[i].DeepCopy(p, &%s[i])\n", x, d) })
				b.emit("}\n")
			case shapeCounted:
				b.emit("%s = deepcopy.Array(p, %s)\n", d, x)
			case shapeInts, shapeFloats:
				b.emit("%s = deepcopy.Scalars(p, %s)\n", d, x)
			case shapeStrings:
				b.emit("%s = deepcopy.Strings(p, %s)\n", d, x)
			case shapeBlob:
				b.emit("%s = deepcopy.Blob(p, %s, uint64(x.%s))\n", d, x, f.sizeField)
			}
		}
	})
	b.emit("}\n")
}
