// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "base58")

// Base58 encodes and decodes data with a given alphabet. It holds no
// mutable state and is safe for concurrent use.
type Base58 struct {
	alphabet *Alphabet
}

// New creates a Base58 codec over the given alphabet. An empty alphabet
// selects BitcoinAlphabet.
func New(alphabet string) (*Base58, error) {
	if alphabet == "" || alphabet == BitcoinAlphabet {
		return &Base58{alphabet: BTCAlphabet}, nil
	}

	a, err := NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	log.WithField("alphabet", alphabet).Traceln("custom alphabet loaded")
	return &Base58{alphabet: a}, nil
}

// MustNew is like New but panics on an invalid alphabet.
func MustNew(alphabet string) *Base58 {
	b, err := New(alphabet)
	if err != nil {
		panic(err)
	}
	return b
}

// NewWithAlphabet creates a Base58 codec out of prebuilt lookup tables.
func NewWithAlphabet(a *Alphabet) *Base58 {
	return &Base58{alphabet: a}
}

// Alphabet returns the 58 characters in use.
func (b *Base58) Alphabet() string {
	return b.alphabet.String()
}

// Encode encodes src into alphabet byte codes.
func (b *Base58) Encode(src []byte) []byte {
	return b.EncodeRange(src, 0, len(src))
}

// EncodeRange encodes src[start:end] into alphabet byte codes. Offsets follow
// normalizeRange rules and never fail.
func (b *Base58) EncodeRange(src []byte, start, end int) []byte {
	start, end = normalizeRange(len(src), start, end)

	digits := encodeDigits(src[start:end])
	for i, d := range digits {
		digits[i] = b.alphabet.digitToByte[d]
	}
	return digits
}

// Decode decodes alphabet byte codes back into raw bytes.
func (b *Base58) Decode(src []byte) ([]byte, error) {
	return b.DecodeRange(src, 0, len(src))
}

// DecodeRange decodes the alphabet byte codes found in src[start:end].
func (b *Base58) DecodeRange(src []byte, start, end int) ([]byte, error) {
	start, end = normalizeRange(len(src), start, end)

	digits := make([]byte, end-start)
	for i := start; i < end; i++ {
		d := b.alphabet.byteToDigit[src[i]]
		if d < 0 {
			return nil, byteError(src[i], i)
		}
		digits[i-start] = byte(d)
	}

	return decodeDigits(digits), nil
}

// EncodeToString encodes src into a Base58 string.
func (b *Base58) EncodeToString(src []byte) string {
	return b.EncodeToStringRange(src, 0, len(src))
}

// EncodeToStringRange encodes src[start:end] into a Base58 string.
func (b *Base58) EncodeToStringRange(src []byte, start, end int) string {
	start, end = normalizeRange(len(src), start, end)

	var sb strings.Builder
	digits := encodeDigits(src[start:end])
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteRune(b.alphabet.digitToChar[d])
	}
	return sb.String()
}

// DecodeFromString decodes a Base58 string.
func (b *Base58) DecodeFromString(s string) ([]byte, error) {
	return b.DecodeFromStringRange(s, 0, len(s))
}

// DecodeFromStringRange decodes s[start:end]. Offsets are byte offsets into s.
func (b *Base58) DecodeFromStringRange(s string, start, end int) ([]byte, error) {
	start, end = normalizeRange(len(s), start, end)

	digits := make([]byte, 0, end-start)
	for i := start; i < end; {
		r, size := utf8.DecodeRuneInString(s[i:end])
		d := b.alphabet.digitOfRune(r)
		if d < 0 {
			return nil, charError(ErrInvalidSymbol, r, i)
		}
		digits = append(digits, byte(d))
		i += size
	}

	return decodeDigits(digits), nil
}

// EncodeText encodes the UTF-8 bytes of s.
func (b *Base58) EncodeText(s string) string {
	return b.EncodeTextRange(s, 0, len(s))
}

// EncodeTextRange encodes the bytes of s[start:end]. Offsets are byte offsets.
func (b *Base58) EncodeTextRange(s string, start, end int) string {
	return b.EncodeToStringRange([]byte(s), start, end)
}

// DecodeText decodes s and interprets the result as UTF-8 text. Invalid
// sequences are replaced by utf8.RuneError.
func (b *Base58) DecodeText(s string) (string, error) {
	return b.DecodeTextRange(s, 0, len(s))
}

// DecodeTextRange is DecodeText over s[start:end].
func (b *Base58) DecodeTextRange(s string, start, end int) (string, error) {
	raw, err := b.DecodeFromStringRange(s, start, end)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
}
