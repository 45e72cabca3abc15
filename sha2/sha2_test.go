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
// github.com:SymbolNotFound/sha2/sha2/sha2_test.go

package sha2_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SymbolNotFound/sha2/sha2"
)

func Test_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		variant  func([]byte) string
		expected string
	}{
		{"empty/sha256", "", sha2.Sum256,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"[:64]},
		{"abc/sha256", "abc", sha2.Sum256,
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"[:64]},
		{"abc/sha224", "abc", sha2.Sum224,
			"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"[:56]},
		{"abc/sha512", "abc", sha2.Sum512,
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"[:128]},
		{"abc/sha384", "abc", sha2.Sum384,
			"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"[:96]},
		{"lazy dog/sha256", "The quick brown fox jumps over the lazy dog", sha2.Sum256,
			"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"[:64]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.variant([]byte(tt.input))
			require.Equal(t, tt.expected, got)
		})
	}
}

func Test_EmptyInputKnownAnswers(t *testing.T) {
	// Property 6: every variant's empty-input digest is the FIPS known-answer.
	tests := []struct {
		name     string
		variant  func([]byte) string
		expected string
	}{
		{"sha256", sha2.Sum256, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha224", sha2.Sum224, "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
		{"sha512", sha2.Sum512, "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"sha384", sha2.Sum384, "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b"},
		{"sha512-224", sha2.Sum512_224, "6ed0dd02806fa89e25de060c19d3ac86cabb87d6a0ddd05c333b84f4"},
		{"sha512-256", sha2.Sum512_256, "c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.variant(nil))
		})
	}
}

func Test_OutputShape(t *testing.T) {
	// Property 2: output length and alphabet.
	tests := []struct {
		name    string
		variant func([]byte) string
		hexLen  int
	}{
		{"sha256", sha2.Sum256, 64},
		{"sha224", sha2.Sum224, 56},
		{"sha512", sha2.Sum512, 128},
		{"sha384", sha2.Sum384, 96},
		{"sha512-224", sha2.Sum512_224, 56},
		{"sha512-256", sha2.Sum512_256, 64},
	}
	inputs := [][]byte{nil, []byte("x"), []byte(strings.Repeat("y", 1000))}
	for _, tt := range tests {
		for _, in := range inputs {
			got := tt.variant(in)
			require.Len(t, got, tt.hexLen, "variant %s on input of length %d", tt.name, len(in))
			require.Regexp(t, "^[0-9a-f]+$", got)
		}
	}
}

func Test_Determinism(t *testing.T) {
	// Property 1: repeated invocations agree.
	input := []byte("determinism check")
	first := sha2.Sum256(input)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, sha2.Sum256(input))
	}
}

func Test_TruncationConsistency(t *testing.T) {
	// Property 4: truncating variants equal the prefix of their parent
	// pipeline run from their own IV (not the parent's IV -- SHA-224's IV
	// differs from SHA-256's, so Sum224 is not a prefix of Sum256). The IVs
	// are internal to the package, so SHA-224 is checked against its
	// reference digest for this input.
	input := []byte("truncation check spanning more than one block to exercise padding across block boundaries")
	require.Equal(t, "5776214fe6020a8ed1492e07e58374fc44ba1aa0d3371c0f45ed7171", sha2.Sum224(input))
	// For the 64-bit family the parent/child relationship is IV-only;
	// Sum384/512-224/512-256 each already return the correctly-IV'd
	// truncated digest, so this just re-confirms the lengths line up.
	require.Len(t, sha2.Sum384(input), 96)
	require.Len(t, sha2.Sum512_224(input), 56)
	require.Len(t, sha2.Sum512_256(input), 64)
}

func Test_Sensitivity(t *testing.T) {
	// Property 5: distinct single-byte inputs yield distinct digests,
	// for all six variants, over a bounded sample.
	variants := []func([]byte) string{
		sha2.Sum256, sha2.Sum224, sha2.Sum512, sha2.Sum384, sha2.Sum512_224, sha2.Sum512_256,
	}
	for _, v := range variants {
		seen := make(map[string]byte)
		for b := 0; b < 256; b++ {
			digest := v([]byte{byte(b)})
			if prior, ok := seen[digest]; ok {
				t.Fatalf("collision between bytes %d and %d", prior, b)
			}
			seen[digest] = byte(b)
		}
	}
}

func Test_MultiBlockInput(t *testing.T) {
	// Exercises the block-iteration loop: longer than one block for both
	// pipelines (64 and 128 byte blocks).
	input := []byte(strings.Repeat("block boundary stress test input ", 20))
	require.Len(t, sha2.Sum256(input), 64)
	require.Len(t, sha2.Sum512(input), 128)
	// Determinism still holds across block boundaries.
	require.Equal(t, sha2.Sum256(input), sha2.Sum256(append([]byte{}, input...)))
}

func Test_HashFuncsDispatch(t *testing.T) {
	for name, fn := range sha2.HashFuncs {
		require.NotNil(t, fn, "variant %s", name)
		require.NotEmpty(t, fn([]byte("dispatch")))
	}
}
