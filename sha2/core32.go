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
// github.com:SymbolNotFound/sha2/sha2/core32.go

package sha2

import "encoding/binary"

// The 32-bit pipeline (SHA-256 family) works on 512-bit (64 byte) blocks,
// expanding each into a 64-word message schedule.
const block32Bytes = 64
const block32Words = 16
const schedule32Words = 64

// variant32 is the plain-value description of a 32-bit pipeline variant:
// just the starting chaining state and the output length in hex characters.
// The round constants, block size and round count are shared by every
// 32-bit variant and so are not part of the record.
type variant32 struct {
	iv     [8]uint32
	hexLen int
}

// pad32 appends the 0x80 terminator, zero padding, and the 64-bit
// big-endian bit-length field, producing a buffer whose length is a
// multiple of block32Bytes. See spec §4.1.
func pad32(input []byte) []byte {
	bitLen := uint64(len(input)) * 8

	padded := make([]byte, 0, len(input)+block32Bytes)
	padded = append(padded, input...)
	padded = append(padded, 0x80)
	for len(padded)%block32Bytes != block32Bytes-8 {
		padded = append(padded, 0x00)
	}
	var lengthField [8]byte
	binary.BigEndian.PutUint64(lengthField[:], bitLen)
	padded = append(padded, lengthField[:]...)
	return padded
}

// decodeBlock32 reads the blockIndex'th block32Bytes-byte block of padded
// into 16 big-endian 32-bit words.
func decodeBlock32(padded []byte, blockIndex int) [block32Words]uint32 {
	var words [block32Words]uint32
	base := blockIndex * block32Bytes
	for i := 0; i < block32Words; i++ {
		words[i] = binary.BigEndian.Uint32(padded[base+i*4 : base+i*4+4])
	}
	return words
}

// schedule32 expands a 16-word block into the 64-word message schedule,
// via the small-sigma recurrence of spec §4.3.
func schedule32(block [block32Words]uint32) [schedule32Words]uint32 {
	var w [schedule32Words]uint32
	copy(w[:block32Words], block[:])
	for i := block32Words; i < schedule32Words; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
	return w
}

// compress32 runs the 64-round compression function over the message
// schedule, mutating a copy of the chaining state and returning the
// updated state (spec §4.4).
func compress32(h [8]uint32, w [schedule32Words]uint32) [8]uint32 {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < schedule32Words; i++ {
		bigS1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + bigS1 + ch + k256[i] + w[i]
		bigS0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
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

	return [8]uint32{
		h[0] + a, h[1] + b, h[2] + c, h[3] + d,
		h[4] + e, h[5] + f, h[6] + g, h[7] + hh,
	}
}

// hash32 runs the full pipeline (pad, decode, schedule, compress per
// block) over input, returning the final chaining state.
func hash32(v variant32, input []byte) [8]uint32 {
	padded := pad32(input)
	h := v.iv
	for block := 0; block*block32Bytes < len(padded); block++ {
		words := decodeBlock32(padded, block)
		w := schedule32(words)
		h = compress32(h, w)
	}
	return h
}

func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}
