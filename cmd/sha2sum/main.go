// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/sha2/cmd/sha2sum/main.go

// Command sha2sum hashes a file, a literal string argument, or the empty
// input, using a selectable SHA-2 variant. It is the external CLI
// collaborator named (but not specified) by spec.md §6.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/SymbolNotFound/sha2/sha2"
)

func main() {
	app := &cli.App{
		Name:  "sha2sum",
		Usage: "compute a SHA-2 family digest of a file or string",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "variant",
				Value: string(sha2.VariantSHA256),
				Usage: "one of sha256, sha224, sha512, sha384, sha512-224, sha512-256",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "path to a file that should be hashed",
			},
			&cli.BoolFlag{
				Name:  "empty",
				Usage: "hash the empty input",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	variant := sha2.Variant(c.String("variant"))
	hashFunc, ok := sha2.HashFuncs[variant]
	if !ok {
		return fmt.Errorf("unknown --variant %q", variant)
	}

	input, err := readInput(c)
	if err != nil {
		return err
	}

	digest := hashFunc(input)
	color.New(color.FgGreen).Printf("%s  ", digest)
	fmt.Println(string(variant))
	return nil
}

func readInput(c *cli.Context) ([]byte, error) {
	switch {
	case c.Bool("empty"):
		return []byte{}, nil
	case c.String("file") != "":
		return os.ReadFile(c.String("file"))
	case c.Args().Len() > 0:
		return []byte(c.Args().First()), nil
	default:
		return nil, fmt.Errorf("expected --file, --empty, or a string argument")
	}
}
