// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package hash

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Sha3256 returns the SHA3-256 digest of bs.
func Sha3256(bs []byte) ([]byte, error) {
	return PerformHash(sha3.New256(), bs)
}

// DoubleSha3256 hashes bs twice with SHA3-256. It is the digest behind
// check-encoded identifiers.
func DoubleSha3256(bs []byte) ([]byte, error) {
	first, err := Sha3256(bs)
	if err != nil {
		return nil, err
	}
	return Sha3256(first)
}

// PerformHash feeds bs to H and returns the resulting digest.
func PerformHash(H hash.Hash, bs []byte) ([]byte, error) {
	if _, err := H.Write(bs); err != nil {
		return nil, err
	}
	return H.Sum(nil), nil
}
