// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import "math/big"

// std is the codec behind the package level functions.
var std = NewWithAlphabet(BTCAlphabet)

// IsBase58String returns true if every character of s belongs to
// BitcoinAlphabet. The empty string qualifies.
func IsBase58String(s string) bool {
	for _, r := range s {
		if BTCAlphabet.digitOfRune(r) < 0 {
			return false
		}
	}
	return true
}

// Encode encodes src with BitcoinAlphabet into alphabet byte codes.
func Encode(src []byte) []byte { return std.Encode(src) }

// Decode decodes BitcoinAlphabet byte codes.
func Decode(src []byte) ([]byte, error) { return std.Decode(src) }

// EncodeToString encodes src with BitcoinAlphabet.
func EncodeToString(src []byte) string { return std.EncodeToString(src) }

// DecodeFromString decodes a BitcoinAlphabet string.
func DecodeFromString(s string) ([]byte, error) { return std.DecodeFromString(s) }

// EncodeText encodes the UTF-8 bytes of s with BitcoinAlphabet.
func EncodeText(s string) string { return std.EncodeText(s) }

// DecodeText decodes a BitcoinAlphabet string into UTF-8 text.
func DecodeText(s string) (string, error) { return std.DecodeText(s) }

// EncodeTextRange encodes the bytes of s[start:end] with BitcoinAlphabet.
func EncodeTextRange(s string, start, end int) string { return std.EncodeTextRange(s, start, end) }

// DecodeTextRange decodes s[start:end] into UTF-8 text.
func DecodeTextRange(s string, start, end int) (string, error) {
	return std.DecodeTextRange(s, start, end)
}

// EncodeInt encodes n with BitcoinAlphabet.
func EncodeInt(n int64) (string, error) { return std.EncodeInt(n) }

// DecodeInt decodes a BitcoinAlphabet integer.
func DecodeInt(s string) (int64, error) { return std.DecodeInt(s) }

// EncodeBigInt encodes x with BitcoinAlphabet.
func EncodeBigInt(x *big.Int) string { return std.EncodeBigInt(x) }

// DecodeBigInt decodes a BitcoinAlphabet big integer.
func DecodeBigInt(s string) (*big.Int, error) { return std.DecodeBigInt(s) }

// EncodeAlphabet encodes src with the given alphabet.
func EncodeAlphabet(src []byte, alphabet *Alphabet) string {
	return NewWithAlphabet(alphabet).EncodeToString(src)
}

// DecodeAlphabet decodes s with the given alphabet.
func DecodeAlphabet(s string, alphabet *Alphabet) ([]byte, error) {
	return NewWithAlphabet(alphabet).DecodeFromString(s)
}
