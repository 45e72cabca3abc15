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
// github.com:SymbolNotFound/sha2/sha2/core_test.go

package sha2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Pad32Law(t *testing.T) {
	// Property 3: padded length is block-aligned and within the documented
	// range above the original length, [1+8, 64+8] bytes, for the 32-bit
	// pipeline (Test_Pad64Law covers the 64-bit one).
	for _, size := range []int{0, 1, 55, 56, 63, 64, 65, 1000} {
		input := make([]byte, size)
		padded := pad32(input)
		require.Zero(t, len(padded)%block32Bytes)
		grown := len(padded) - size
		require.GreaterOrEqual(t, grown, 1+8)
		require.LessOrEqual(t, grown, block32Bytes+8)
	}
}

func Test_Pad64Law(t *testing.T) {
	for _, size := range []int{0, 1, 111, 112, 127, 128, 129, 2000} {
		input := make([]byte, size)
		padded := pad64(input)
		require.Zero(t, len(padded)%block64Bytes)
		grown := len(padded) - size
		require.GreaterOrEqual(t, grown, 1+16)
		require.LessOrEqual(t, grown, block64Bytes+16)
	}
}

func Test_Pad32EmptyInputFillsOneBlock(t *testing.T) {
	padded := pad32(nil)
	require.Len(t, padded, block32Bytes)
	require.Equal(t, byte(0x80), padded[0])
}

func Test_Pad64LengthFieldHighBytesZero(t *testing.T) {
	padded := pad64(make([]byte, 10))
	lengthField := padded[len(padded)-16:]
	for _, b := range lengthField[:8] {
		require.Zero(t, b)
	}
}

func Test_Rotr(t *testing.T) {
	require.Equal(t, uint32(0x80000000), rotr32(1, 1))
	require.Equal(t, uint64(0x8000000000000000), rotr64(1, 1))
}
