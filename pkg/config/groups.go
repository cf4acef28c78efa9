// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

type generalConfiguration struct {
	Alphabet string
}

type loggerConfiguration struct {
	Level  string
	Output string
	Format string
}

// Input limits enforced before calling into the codec.
type limitsConfiguration struct {
	MaxInputSize int
}
