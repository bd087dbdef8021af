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

// Package cereal implements the byte-level encoding used to forward graphics
// API calls from a guest to a host renderer.
//
// Values are written to a Stream in field declaration order with no padding,
// tags or alignment:
//
//   - integers are big-endian of their natural width, floats travel as their
//     IEEE 754 bits;
//   - strings are a u32 byte length followed by the bytes, no terminator;
//   - optional values are a u8 presence flag (0 absent, 1 present) followed by
//     the payload when present;
//   - counted arrays are a u32 count followed by each element;
//   - opaque blobs are raw bytes whose size is carried by a sibling field;
//   - fixed-size arrays are their elements back to back.
//
// Both peers must agree on the schema; nothing on the wire describes it.
// Marshal and Unmarshal methods for API structures are generated by
// tools/cerealgen from annotated Go declarations.
package cereal
