// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

// A single point of constants definition
const (
	// Version is the semantic version of the base58 tooling.
	Version = "0.1.0"

	// DefaultAlphabet is the reference Bitcoin alphabet. It is repeated here
	// rather than imported to keep this package free of dusk-base58 imports.
	DefaultAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// DefaultMaxInputSize bounds the input accepted by the command line
	// tool. Conversion cost grows with the square of the input length.
	DefaultMaxInputSize = 4096
)
