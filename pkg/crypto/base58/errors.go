// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidAlphabetLength is returned when an alphabet is not exactly 58 characters long.
	ErrInvalidAlphabetLength = errors.New("base58: the length of the alphabet must be equal to 58")
	// ErrInvalidAlphabetCharacter is returned when an alphabet contains a character outside of the Base58 domain.
	ErrInvalidAlphabetCharacter = errors.New("base58: invalid alphabet character")
	// ErrDuplicateAlphabetCharacter is returned when an alphabet contains the same character twice.
	ErrDuplicateAlphabetCharacter = errors.New("base58: duplicate alphabet character")
	// ErrInvalidSymbol is returned when decoding meets a character or byte which is not part of the alphabet.
	ErrInvalidSymbol = errors.New("base58: invalid symbol")
	// ErrTypeMismatch is returned by EncodeValue for unsupported input kinds.
	ErrTypeMismatch = errors.New("base58: unsupported input type")
	// ErrOutOfSafeIntegerRange is returned when an integer falls outside [MinSafeInteger, MaxSafeInteger].
	ErrOutOfSafeIntegerRange = errors.New("base58: integer outside of the safe integer range")
	// ErrInvalidFormat is returned by CheckDecode when the payload is too short to hold a version and a checksum.
	ErrInvalidFormat = errors.New("base58: invalid check-encoded format")
	// ErrChecksum is returned by CheckDecode when the checksum does not match.
	ErrChecksum = errors.New("base58: checksum mismatch")
)

// PositionError reports the offending symbol of an alphabet or an encoded
// input, along with its position.
//
//nolint:golint
type PositionError struct {
	Err    error
	Symbol string
	Index  int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s %q at index %d", e.Err.Error(), e.Symbol, e.Index)
}

// Unwrap returns the error kind, so that errors.Is works against the sentinels.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *PositionError) Cause() error {
	return e.Err
}

func charError(kind error, r rune, index int) error {
	return &PositionError{Err: kind, Symbol: string(r), Index: index}
}

func byteError(b byte, index int) error {
	return &PositionError{Err: ErrInvalidSymbol, Symbol: fmt.Sprintf("%02x", b), Index: index}
}
