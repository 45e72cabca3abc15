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
// github.com:SymbolNotFound/sha2/sha2/core64.go

package sha2

import "encoding/binary"

// The 64-bit pipeline (SHA-512 family) works on 1024-bit (128 byte) blocks,
// expanding each into an 80-word message schedule.
const block64Bytes = 128
const block64Words = 16
const schedule64Words = 80

// variant64 is the plain-value description of a 64-bit pipeline variant.
// As with variant32, the round constants, block size and round count are
// shared by every 64-bit variant.
type variant64 struct {
	iv     [8]uint64
	hexLen int
}

// pad64 appends the 0x80 terminator, zero padding, and a 128-bit
// big-endian bit-length field whose high 8 bytes are always zero (this
// implementation's documented 2^64-bit length cap; see spec §4.1, §9).
func pad64(input []byte) []byte {
	bitLen := uint64(len(input)) * 8

	padded := make([]byte, 0, len(input)+block64Bytes)
	padded = append(padded, input...)
	padded = append(padded, 0x80)
	for len(padded)%block64Bytes != block64Bytes-16 {
		padded = append(padded, 0x00)
	}
	var lengthField [16]byte
	binary.BigEndian.PutUint64(lengthField[8:], bitLen)
	padded = append(padded, lengthField[:]...)
	return padded
}

// decodeBlock64 reads the blockIndex'th block64Bytes-byte block of padded
// into 16 big-endian 64-bit words.
func decodeBlock64(padded []byte, blockIndex int) [block64Words]uint64 {
	var words [block64Words]uint64
	base := blockIndex * block64Bytes
	for i := 0; i < block64Words; i++ {
		words[i] = binary.BigEndian.Uint64(padded[base+i*8 : base+i*8+8])
	}
	return words
}

// schedule64 expands a 16-word block into the 80-word message schedule.
func schedule64(block [block64Words]uint64) [schedule64Words]uint64 {
	var w [schedule64Words]uint64
	copy(w[:block64Words], block[:])
	for i := block64Words; i < schedule64Words; i++ {
		s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ (w[i-15] >> 7)
		s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ (w[i-2] >> 6)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
	return w
}

// compress64 runs the 80-round compression function over the message
// schedule, returning the updated chaining state.
func compress64(h [8]uint64, w [schedule64Words]uint64) [8]uint64 {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < schedule64Words; i++ {
		bigS1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
		ch := (e & f) ^ (^e & g)
		t1 := hh + bigS1 + ch + k512[i] + w[i]
		bigS0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := bigS0 + maj

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint64{
		h[0] + a, h[1] + b, h[2] + c, h[3] + d,
		h[4] + e, h[5] + f, h[6] + g, h[7] + hh,
	}
}

// hash64 runs the full pipeline over input, returning the final chaining
// state.
func hash64(v variant64, input []byte) [8]uint64 {
	padded := pad64(input)
	h := v.iv
	for block := 0; block*block64Bytes < len(padded); block++ {
		words := decodeBlock64(padded, block)
		w := schedule64(words)
		h = compress64(h, w)
	}
	return h
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
