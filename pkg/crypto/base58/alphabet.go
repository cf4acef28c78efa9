// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import "unicode/utf8"

// Base is the radix of the encoding.
const Base = 58

const (
	// BitcoinAlphabet is the reference alphabet. It leaves out 0, O, I and l.
	BitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	// DarkwolfAlphabet is an alternate ordering of the reference alphabet.
	DarkwolfAlphabet = "AveDarkwo1f23456789BCEFGHJKLMNPQRSTUVWXYZbcdghijmnpqstuxyz"

	// NegativeChar prefixes encoded negative integers.
	NegativeChar = '-'
)

var (
	// BTCAlphabet holds the lookup tables of BitcoinAlphabet.
	BTCAlphabet = mustAlphabet(BitcoinAlphabet)
	// DarkAlphabet holds the lookup tables of DarkwolfAlphabet.
	DarkAlphabet = mustAlphabet(DarkwolfAlphabet)

	// domain marks the characters any alphabet may be made of.
	domain = func() (d [utf8.RuneSelf]bool) {
		for i := 0; i < len(BitcoinAlphabet); i++ {
			d[BitcoinAlphabet[i]] = true
		}
		return d
	}()
)

// Alphabet is the set of lookup tables built from a 58 character alphabet.
// It is never modified after NewAlphabet returns and can be shared freely.
type Alphabet struct {
	str string

	digitToChar [Base]rune
	digitToByte [Base]byte
	// -1 marks a character or a byte that is not part of the alphabet
	charToDigit [utf8.RuneSelf]int8
	byteToDigit [256]int8
}

// NewAlphabet validates s and builds its lookup tables.
//
// The alphabet must be made of 58 distinct characters, each of them taken
// from BitcoinAlphabet.
func NewAlphabet(s string) (*Alphabet, error) {
	if utf8.RuneCountInString(s) != Base {
		return nil, ErrInvalidAlphabetLength
	}

	a := &Alphabet{str: s}
	for i := range a.charToDigit {
		a.charToDigit[i] = -1
	}
	for i := range a.byteToDigit {
		a.byteToDigit[i] = -1
	}

	digit := 0
	for _, r := range s {
		if r >= utf8.RuneSelf || !domain[r] {
			return nil, charError(ErrInvalidAlphabetCharacter, r, digit)
		}
		if a.charToDigit[r] != -1 {
			return nil, charError(ErrDuplicateAlphabetCharacter, r, digit)
		}

		a.digitToChar[digit] = r
		a.digitToByte[digit] = byte(r)
		a.charToDigit[r] = int8(digit)
		a.byteToDigit[byte(r)] = int8(digit)
		digit++
	}

	return a, nil
}

func mustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsAlphabet returns true if s can be used to build an Alphabet.
func IsAlphabet(s string) bool {
	_, err := NewAlphabet(s)
	return err == nil
}

// String returns the alphabet characters, ordered by digit value.
func (a *Alphabet) String() string {
	return a.str
}

// Zero returns the character encoding the digit 0.
func (a *Alphabet) Zero() rune {
	return a.digitToChar[0]
}

// digitOfRune returns the digit value of r, or -1.
func (a *Alphabet) digitOfRune(r rune) int8 {
	if r < 0 || r >= utf8.RuneSelf {
		return -1
	}
	return a.charToDigit[r]
}
