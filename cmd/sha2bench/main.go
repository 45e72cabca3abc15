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
// github.com:SymbolNotFound/sha2/cmd/sha2bench/main.go

// Command sha2bench runs the fixed known-answer vectors from spec.md §8
// through every SHA-2 variant, timing each call and reporting a
// pass/fail table. It plays the role of both the "test harness" and the
// "benchmark harness" spec.md §6 names as external collaborators.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/SymbolNotFound/sha2/sha2"
)

type vector struct {
	variant  sha2.Variant
	input    string
	expected string
}

var vectors = []vector{
	{sha2.VariantSHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{sha2.VariantSHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{sha2.VariantSHA224, "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{sha2.VariantSHA512, "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{sha2.VariantSHA384, "abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	{sha2.VariantSHA256, "The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	{sha2.VariantSHA512_224, "", "6ed0dd02806fa89e25de060c19d3ac86cabb87d6a0ddd05c333b84f4"},
	{sha2.VariantSHA512_256, "", "c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a"},
}

func main() {
	app := &cli.App{
		Name:  "sha2bench",
		Usage: "verify and time the SHA-2 known-answer vectors",
		Action: func(c *cli.Context) error {
			if runAll() {
				return nil
			}
			return cli.Exit("one or more vectors mismatched", 1)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runAll() bool {
	allPassed := true
	for _, v := range vectors {
		hashFunc := sha2.HashFuncs[v.variant]

		start := time.Now()
		got := hashFunc([]byte(v.input))
		elapsed := time.Since(start)

		passed := got == v.expected
		allPassed = allPassed && passed

		status := color.New(color.FgGreen).Sprint("PASS")
		if !passed {
			status = color.New(color.FgRed).Sprint("FAIL")
		}
		fmt.Printf("[%s] %-12s %-20q %s  (%s)\n", status, v.variant, truncate(v.input, 20), got, elapsed)
		if !passed {
			fmt.Printf("       expected %s\n", v.expected)
		}
	}
	return allPassed
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
