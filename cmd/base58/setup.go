// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"io"
	"io/ioutil"
	"os"
	"strings"

	cfg "github.com/dusk-network/dusk-base58/pkg/config"
	"github.com/dusk-network/dusk-base58/pkg/crypto/base58"
	"github.com/dusk-network/dusk-base58/pkg/util/nativeutils/logging"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/urfave/cli"
)

var (
	// codec is built in setup from general.alphabet
	codec    *base58.Base58
	closeLog = func() error { return nil }

	stdin io.Reader = os.Stdin
)

// setup loads the configuration, the logger and the codec. Global flags
// are forwarded to the config loader as pflag overrides.
func setup(ctx *cli.Context) error {
	fs := pflag.NewFlagSet("base58", pflag.ContinueOnError)
	cfg.DefineFlags(fs)

	overrides := map[string]string{
		AlphabetFlag.Name:  "general.alphabet",
		VerbosityFlag.Name: "logger.level",
	}
	for name, key := range overrides {
		name = strings.Split(name, ",")[0]
		if ctx.IsSet(name) {
			if err := fs.Set(key, ctx.String(name)); err != nil {
				return errors.Wrapf(err, "could not set %s", key)
			}
		}
	}

	if err := cfg.Load(ctx.String(ConfigFlag.Name), fs); err != nil {
		return errors.Wrap(err, "could not load config")
	}

	out, closer, err := logging.OpenOutput(cfg.Get().Logger.Output)
	if err != nil {
		return err
	}
	closeLog = closer
	logging.InitLog(out)

	codec, err = base58.New(cfg.Get().General.Alphabet)
	if err != nil {
		return errors.Wrap(err, "invalid general.alphabet")
	}

	log.WithField("file", cfg.Get().UsedConfigFile).Debugln("loaded config file")
	return nil
}

func teardown(*cli.Context) error {
	return closeLog()
}

// readInput returns the first argument, or stdin with its trailing newline
// stripped when no argument is given. Oversized inputs are rejected.
func readInput(ctx *cli.Context) (string, error) {
	var in string
	if ctx.Args().Present() {
		in = ctx.Args().First()
	} else {
		b, err := ioutil.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "could not read stdin")
		}
		in = strings.TrimRight(string(b), "\r\n")
	}

	return in, checkSize(in)
}

func checkSize(in string) error {
	if max := cfg.Get().Limits.MaxInputSize; max > 0 && len(in) > max {
		return errors.Errorf("input of %d bytes exceeds limits.maxinputsize (%d)", len(in), max)
	}
	return nil
}
