// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package crypto

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/dusk-network/dusk-base58/pkg/crypto/hash"
	"github.com/pkg/errors"
)

// ChecksumSize is the number of bytes a checksum takes once serialized.
const ChecksumSize = 4

// RandEntropy takes an argument n and populates a byte slice of
// size n with random input.
func RandEntropy(n uint32) ([]byte, error) {
	b := make([]byte, n)
	a, err := rand.Read(b)
	if err != nil {
		return nil, errors.Wrap(err, "error generating entropy")
	}
	if uint32(a) != n {
		return nil, errors.Errorf("error expected to read %d bytes instead read %d bytes", n, a)
	}
	return b, nil
}

// Checksum hashes the data with DoubleSha3256
// and returns the first four bytes
func Checksum(data []byte) (uint32, error) {
	digest, err := hash.DoubleSha3256(data)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(digest[:ChecksumSize]), nil
}

// CompareChecksum takes data and an expected checksum
// Returns true if the checksum of the given data is
// equal to the expected checksum
func CompareChecksum(data []byte, want uint32) bool {
	got, err := Checksum(data)
	if err != nil {
		return false
	}
	return got == want
}
