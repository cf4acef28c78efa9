// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import "math"

var (
	// factor bounds the number of base58 digits produced per input byte.
	factor = math.Log(256) / math.Log(Base)
	// inverseFactor bounds the number of bytes produced per base58 digit.
	inverseFactor = math.Log(Base) / math.Log(256)
)

// accumulate performs buf = buf*inBase + carry, where buf holds a big-endian
// number written in outBase, one digit per byte. Digits at index high and
// below have never been written. It returns the new high mark.
func accumulate(buf []byte, high int, carry, inBase, outBase uint32) int {
	i := len(buf) - 1
	for ; carry != 0 || i > high; i-- {
		carry += uint32(buf[i]) * inBase
		buf[i] = byte(carry % outBase)
		carry /= outBase
	}
	return i
}

// convert rebases the digits of src from inBase to outBase. Every leading
// zero digit of src is carried over as one leading zero digit of the result,
// as it would be lost otherwise.
func convert(src []byte, inBase, outBase uint32, ratio float64) []byte {
	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// Oversizing is harmless, the unwritten head is trimmed below.
	size := int(float64(len(src)-zeros)*ratio + 1)
	buf := make([]byte, size)
	high := size - 1
	for _, d := range src[zeros:] {
		high = accumulate(buf, high, uint32(d), inBase, outBase)
	}

	out := make([]byte, zeros+size-high-1)
	copy(out[zeros:], buf[high+1:])
	return out
}

// encodeDigits returns the base58 digit values of src.
func encodeDigits(src []byte) []byte {
	return convert(src, 256, Base, factor)
}

// decodeDigits returns the bytes represented by the base58 digit values of src.
func decodeDigits(digits []byte) []byte {
	return convert(digits, Base, 256, inverseFactor)
}

// normalizeRange applies slice-like semantics to [start, end): negative
// offsets count back from length, out of range offsets are clamped.
func normalizeRange(length, start, end int) (int, int) {
	start = clamp(length, start)
	end = clamp(length, end)
	if end < start {
		end = start
	}
	return start, end
}

func clamp(length, offset int) int {
	if offset < 0 {
		offset += length
		if offset < 0 {
			return 0
		}
		return offset
	}
	if offset > length {
		return length
	}
	return offset
}
