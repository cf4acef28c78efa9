// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/urfave/cli"
)

var (
	// ConfigFlag flag to use configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "base58.toml configuration file",
	}
	// AlphabetFlag flag to override the alphabet.
	AlphabetFlag = cli.StringFlag{
		Name:  "alphabet, a",
		Usage: "58 character alphabet to encode and decode with",
	}
	// VerbosityFlag flag to set the logger level.
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "logger level (trace, debug, info, warn, error)",
	}
)

var (
	hexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "raw bytes are given or printed as hexadecimal",
	}
	startFlag = cli.IntFlag{
		Name:  "start",
		Usage: "first offset of the input to process, negative counts from the end",
	}
	endFlag = cli.IntFlag{
		Name:  "end",
		Usage: "offset past the last one to process, negative counts from the end",
	}
	prefixFlag = cli.UintFlag{
		Name:  "prefix",
		Usage: "version byte prefixed to the payload (0-255)",
	}
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "number of random bytes",
		Value: 16,
	}
)

// GlobalFlags flags usable in a global context.
var GlobalFlags = []cli.Flag{
	ConfigFlag,
	AlphabetFlag,
	VerbosityFlag,
}
