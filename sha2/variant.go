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
// github.com:SymbolNotFound/sha2/sha2/variant.go

// Package sha2 computes FIPS 180-4 SHA-2 family digests (SHA-256, SHA-224,
// SHA-512, SHA-384, SHA-512/224, SHA-512/256) over in-memory byte slices.
//
// Every exported function is a pure, allocation-local, one-shot call: given
// a byte sequence it returns a lowercase hex digest of the variant's fixed
// length. There is no incremental/streaming interface and no shared state
// between calls; concurrent calls, of the same or different variants, need
// no coordination.
//
// Inputs are expected to be shorter than 2^61 bytes so that the bit length
// fits in the 64-bit length field this implementation uses for every
// variant (see the package-level Open Questions note in SPEC_FULL.md).
// Longer inputs do not panic or corrupt memory; the length field silently
// wraps to its low 64 bits, matching the documented non-goal.
package sha2

var (
	variantSHA256 = variant32{iv: ivSHA256, hexLen: 64}
	variantSHA224 = variant32{iv: ivSHA224, hexLen: 56}

	variantSHA512     = variant64{iv: ivSHA512, hexLen: 128}
	variantSHA384     = variant64{iv: ivSHA384, hexLen: 96}
	variantSHA512_224 = variant64{iv: ivSHA512_224, hexLen: 56}
	variantSHA512_256 = variant64{iv: ivSHA512_256, hexLen: 64}
)

// Sum256 returns the 64-character lowercase hex SHA-256 digest of input.
func Sum256(input []byte) string {
	return finalize32(hash32(variantSHA256, input), variantSHA256.hexLen)
}

// Sum224 returns the 56-character lowercase hex SHA-224 digest of input:
// the leftmost 56 hex characters of the 32-bit pipeline run from the
// SHA-224 IV (spec §8, property 4).
func Sum224(input []byte) string {
	return finalize32(hash32(variantSHA224, input), variantSHA224.hexLen)
}

// Sum512 returns the 128-character lowercase hex SHA-512 digest of input.
func Sum512(input []byte) string {
	return finalize64(hash64(variantSHA512, input), variantSHA512.hexLen)
}

// Sum384 returns the 96-character lowercase hex SHA-384 digest of input:
// the leftmost 96 hex characters of the 64-bit pipeline run from the
// SHA-384 IV.
func Sum384(input []byte) string {
	return finalize64(hash64(variantSHA384, input), variantSHA384.hexLen)
}

// Sum512_224 returns the 56-character lowercase hex SHA-512/224 digest of
// input: the leftmost 56 hex characters of the 64-bit pipeline run from
// the SHA-512/224 IV.
func Sum512_224(input []byte) string {
	return finalize64(hash64(variantSHA512_224, input), variantSHA512_224.hexLen)
}

// Sum512_256 returns the 64-character lowercase hex SHA-512/256 digest of
// input: the leftmost 64 hex characters of the 64-bit pipeline run from
// the SHA-512/256 IV.
func Sum512_256(input []byte) string {
	return finalize64(hash64(variantSHA512_256, input), variantSHA512_256.hexLen)
}

// Variant names the six supported digest algorithms, for use by callers
// that need to select one dynamically (e.g. the cmd/sha2sum CLI).
type Variant string

const (
	VariantSHA256     Variant = "sha256"
	VariantSHA224     Variant = "sha224"
	VariantSHA512     Variant = "sha512"
	VariantSHA384     Variant = "sha384"
	VariantSHA512_224 Variant = "sha512-224"
	VariantSHA512_256 Variant = "sha512-256"
)

// HashFuncs maps every supported Variant name to its Sum function, so
// callers can dispatch dynamically without a switch of their own.
var HashFuncs = map[Variant]func([]byte) string{
	VariantSHA256:     Sum256,
	VariantSHA224:     Sum224,
	VariantSHA512:     Sum512,
	VariantSHA384:     Sum384,
	VariantSHA512_224: Sum512_224,
	VariantSHA512_256: Sum512_256,
}
