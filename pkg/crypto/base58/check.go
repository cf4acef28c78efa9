// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"encoding/binary"

	"github.com/dusk-network/dusk-base58/pkg/crypto"
)

// CheckEncode encodes version || payload || checksum, where the checksum is
// the first four bytes of the double SHA3-256 of version || payload.
func (b *Base58) CheckEncode(version byte, payload []byte) (string, error) {
	buf := make([]byte, 0, 1+len(payload)+crypto.ChecksumSize)
	buf = append(buf, version)
	buf = append(buf, payload...)

	sum, err := crypto.Checksum(buf)
	if err != nil {
		return "", err
	}

	buf = buf[:len(buf)+crypto.ChecksumSize]
	binary.BigEndian.PutUint32(buf[len(buf)-crypto.ChecksumSize:], sum)
	return b.EncodeToString(buf), nil
}

// CheckDecode reverses CheckEncode, verifying the checksum.
func (b *Base58) CheckDecode(s string) (byte, []byte, error) {
	raw, err := b.DecodeFromString(s)
	if err != nil {
		return 0, nil, err
	}

	if len(raw) < 1+crypto.ChecksumSize {
		return 0, nil, ErrInvalidFormat
	}

	split := len(raw) - crypto.ChecksumSize
	if !crypto.CompareChecksum(raw[:split], binary.BigEndian.Uint32(raw[split:])) {
		return 0, nil, ErrChecksum
	}

	return raw[0], raw[1:split], nil
}

// CheckEncode check-encodes payload with BitcoinAlphabet.
func CheckEncode(version byte, payload []byte) (string, error) {
	return std.CheckEncode(version, payload)
}

// CheckDecode decodes a BitcoinAlphabet check-encoded string.
func CheckDecode(s string) (byte, []byte, error) {
	return std.CheckDecode(s)
}
