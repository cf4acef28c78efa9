// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabetTables(t *testing.T) {
	for _, s := range []string{BitcoinAlphabet, DarkwolfAlphabet} {
		a, err := NewAlphabet(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
		assert.Equal(t, rune(s[0]), a.Zero())

		for d := 0; d < Base; d++ {
			c := a.digitToChar[d]
			assert.Equal(t, rune(s[d]), c)
			assert.Equal(t, byte(s[d]), a.digitToByte[d])
			assert.Equal(t, int8(d), a.charToDigit[c])
			assert.Equal(t, int8(d), a.byteToDigit[a.digitToByte[d]])
		}

		present := 0
		for _, d := range a.byteToDigit {
			if d >= 0 {
				present++
			}
		}
		assert.Equal(t, Base, present)
	}
}

func TestNewAlphabetErrors(t *testing.T) {
	var perr *PositionError

	_, err := NewAlphabet(BitcoinAlphabet[:57])
	assert.ErrorIs(t, err, ErrInvalidAlphabetLength)

	_, err = NewAlphabet(BitcoinAlphabet + "1")
	assert.ErrorIs(t, err, ErrInvalidAlphabetLength)

	_, err = NewAlphabet(BitcoinAlphabet[:57] + "1")
	assert.ErrorIs(t, err, ErrDuplicateAlphabetCharacter)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "1", perr.Symbol)
	assert.Equal(t, 57, perr.Index)

	_, err = NewAlphabet("0" + BitcoinAlphabet[1:])
	assert.ErrorIs(t, err, ErrInvalidAlphabetCharacter)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "0", perr.Symbol)
	assert.Equal(t, 0, perr.Index)

	// length is counted in characters, the position too
	_, err = NewAlphabet("é" + BitcoinAlphabet[1:])
	assert.ErrorIs(t, err, ErrInvalidAlphabetCharacter)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "é", perr.Symbol)
	assert.Equal(t, 0, perr.Index)
}

func TestIsAlphabet(t *testing.T) {
	assert.True(t, IsAlphabet(BitcoinAlphabet))
	assert.True(t, IsAlphabet(DarkwolfAlphabet))

	assert.False(t, IsAlphabet(""))
	assert.False(t, IsAlphabet(BitcoinAlphabet[:57]))
	assert.False(t, IsAlphabet(BitcoinAlphabet[:57]+"1"))
	assert.False(t, IsAlphabet(BitcoinAlphabet[:56]+"zz"))
	assert.False(t, IsAlphabet(BitcoinAlphabet[:57]+"0"))
	assert.False(t, IsAlphabet(BitcoinAlphabet[:57]+" "))
}
