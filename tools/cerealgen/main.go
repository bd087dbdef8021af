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

// cerealgen generates Marshal, Unmarshal, CheckEqual and DeepCopy methods
// for structs marked with a "// +cereal" comment.
//
// It is typically invoked from a go:generate directive:
//
//	//go:generate go run goldfish.dev/cereal/tools/cerealgen -pkg vk -output vk_cereal_autogen.go types.go
package main

import (
	"flag"
	"fmt"
	"os"

	"goldfish.dev/cereal/tools/cerealgen/gencereal"
)

var (
	pkg    = flag.String("pkg", "", "output package")
	output = flag.String("output", "", "output file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <input go src files>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *pkg == "" || *output == "" {
		flag.Usage()
		fmt.Fprint(os.Stderr, "Flags -pkg and -output must be provided.\n")
		os.Exit(1)
	}

	g := gencereal.NewGenerator(flag.Args(), *output, *pkg)
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "cerealgen: %v\n", err)
		os.Exit(1)
	}
}
