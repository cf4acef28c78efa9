// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package base58

import (
	"math/big"

	"github.com/pkg/errors"
)

// EncodeValue picks the codec matching the dynamic type of v: raw bytes,
// UTF-8 text, integers and big integers. Other types fail with
// ErrTypeMismatch.
func (b *Base58) EncodeValue(v interface{}) (string, error) {
	switch t := v.(type) {
	case []byte:
		return b.EncodeToString(t), nil
	case string:
		return b.EncodeText(t), nil
	case int:
		return b.EncodeInt(int64(t))
	case int8:
		return b.EncodeInt(int64(t))
	case int16:
		return b.EncodeInt(int64(t))
	case int32:
		return b.EncodeInt(int64(t))
	case int64:
		return b.EncodeInt(t)
	case uint:
		return b.encodeUint(uint64(t)), nil
	case uint8:
		return b.encodeUint(uint64(t)), nil
	case uint16:
		return b.encodeUint(uint64(t)), nil
	case uint32:
		return b.encodeUint(uint64(t)), nil
	case uint64:
		return b.encodeUint(t), nil
	case *big.Int:
		return b.EncodeBigInt(t), nil
	case big.Int:
		return b.EncodeBigInt(&t), nil
	default:
		return "", errors.Wrapf(ErrTypeMismatch, "%T", v)
	}
}

// encodeUint yields the same digits for every unsigned value, whether or
// not it fits the safe integer range.
func (b *Base58) encodeUint(n uint64) string {
	return b.EncodeBigInt(new(big.Int).SetUint64(n))
}

// IsBase58 returns true if v is a Base58 codec.
func IsBase58(v interface{}) bool {
	switch t := v.(type) {
	case *Base58:
		return t != nil
	case Base58:
		return t.alphabet != nil
	default:
		return false
	}
}
