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
// github.com:SymbolNotFound/sha2/sha2/digest.go

package sha2

import (
	"encoding/binary"
	"encoding/hex"
)

// finalize32 serializes h in big-endian order (4 bytes/word, explicit
// rather than relying on narrowing-conversion truncation, per spec §9),
// hex-encodes it, and truncates to hexLen characters.
func finalize32(h [8]uint32, hexLen int) string {
	var raw [8 * 4]byte
	for i, word := range h {
		binary.BigEndian.PutUint32(raw[i*4:i*4+4], word)
	}
	return hex.EncodeToString(raw[:])[:hexLen]
}

// finalize64 serializes h in big-endian order (8 bytes/word), hex-encodes
// it, and truncates to hexLen characters.
func finalize64(h [8]uint64, hexLen int) string {
	var raw [8 * 8]byte
	for i, word := range h {
		binary.BigEndian.PutUint64(raw[i*8:i*8+8], word)
	}
	return hex.EncodeToString(raw[:])[:hexLen]
}
