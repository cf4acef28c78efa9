// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"math/big"
	"strings"
)

const (
	// MaxSafeInteger is the largest integer a float64 represents exactly.
	MaxSafeInteger = 1<<53 - 1
	// MinSafeInteger is the smallest integer a float64 represents exactly.
	MinSafeInteger = -MaxSafeInteger
)

var bigRadix = big.NewInt(Base)

// EncodeInt encodes n as a Base58 number, prefixed with NegativeChar when
// negative. n must lie within [MinSafeInteger, MaxSafeInteger].
func (b *Base58) EncodeInt(n int64) (string, error) {
	if n < MinSafeInteger || n > MaxSafeInteger {
		return "", ErrOutOfSafeIntegerRange
	}

	negative := n < 0
	if negative {
		n = -n
	}

	return b.formatDigits(negative, func(digits []byte) []byte {
		for n > 0 {
			digits = append(digits, byte(n%Base))
			n /= Base
		}
		return digits
	}), nil
}

// DecodeInt decodes a string produced by EncodeInt. A NegativeChar prefix
// followed by a zero magnitude yields 0.
func (b *Base58) DecodeInt(s string) (int64, error) {
	negative, digits, err := b.parseDigits(s)
	if err != nil {
		return 0, err
	}

	var n int64
	for _, d := range digits {
		n = n*Base + int64(d)
		if n > MaxSafeInteger {
			return 0, ErrOutOfSafeIntegerRange
		}
	}

	if negative {
		n = -n
	}
	return n, nil
}

// EncodeBigInt encodes an arbitrary-precision integer. A nil value encodes
// as zero.
func (b *Base58) EncodeBigInt(x *big.Int) string {
	if x == nil {
		x = new(big.Int)
	}

	n := new(big.Int).Abs(x)
	mod := new(big.Int)
	return b.formatDigits(x.Sign() < 0, func(digits []byte) []byte {
		for n.Sign() > 0 {
			n.DivMod(n, bigRadix, mod)
			digits = append(digits, byte(mod.Int64()))
		}
		return digits
	})
}

// DecodeBigInt decodes a string produced by EncodeBigInt.
func (b *Base58) DecodeBigInt(s string) (*big.Int, error) {
	negative, digits, err := b.parseDigits(s)
	if err != nil {
		return nil, err
	}

	n := new(big.Int)
	d := new(big.Int)
	for _, digit := range digits {
		n.Mul(n, bigRadix)
		n.Add(n, d.SetInt64(int64(digit)))
	}

	if negative {
		n.Neg(n)
	}
	return n, nil
}

// formatDigits renders the digits produced, least significant first, by
// fill. A zero magnitude renders as the zero character alone.
func (b *Base58) formatDigits(negative bool, fill func([]byte) []byte) string {
	digits := fill(make([]byte, 0, 16))
	if len(digits) == 0 {
		return string(b.alphabet.Zero())
	}

	var sb strings.Builder
	sb.Grow(len(digits) + 1)
	if negative {
		sb.WriteByte(NegativeChar)
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(b.alphabet.digitToChar[digits[i]])
	}
	return sb.String()
}

// parseDigits splits an optional NegativeChar prefix from s and returns the
// digit values of the rest. A lone NegativeChar is not a sign.
func (b *Base58) parseDigits(s string) (bool, []byte, error) {
	start := 0
	negative := len(s) > 0 && s[0] == NegativeChar
	if negative && len(s) > 1 {
		start = 1
	}

	digits := make([]byte, 0, len(s)-start)
	for i, r := range s[start:] {
		d := b.alphabet.digitOfRune(r)
		if d < 0 {
			return false, nil, charError(ErrInvalidSymbol, r, start+i)
		}
		digits = append(digits, byte(d))
	}
	return negative, digits, nil
}
