// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dusk-network/dusk-base58/pkg/crypto"
	"github.com/dusk-network/dusk-base58/pkg/crypto/base58"
	"github.com/dusk-network/dusk-base58/pkg/util/diagnostics"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// operation transforms one input line into one output line.
type operation func(in string) (string, error)

// operations are the flag-less transformations, shared by their commands
// and by the interactive mode.
var operations = map[string]operation{
	"encode": func(in string) (string, error) {
		return codec.EncodeText(in), nil
	},
	"decode": func(in string) (string, error) {
		return codec.DecodeText(in)
	},
	"encode-int": func(in string) (string, error) {
		n, err := strconv.ParseInt(in, 10, 64)
		if err != nil {
			return "", errors.Wrap(err, "not an integer")
		}
		return codec.EncodeInt(n)
	},
	"decode-int": func(in string) (string, error) {
		n, err := codec.DecodeInt(in)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	},
	"encode-bigint": func(in string) (string, error) {
		x, ok := new(big.Int).SetString(in, 10)
		if !ok {
			return "", errors.Errorf("not an integer: %q", in)
		}
		return codec.EncodeBigInt(x), nil
	},
	"decode-bigint": func(in string) (string, error) {
		x, err := codec.DecodeBigInt(in)
		if err != nil {
			return "", err
		}
		return x.String(), nil
	},
	"check-decode": func(in string) (string, error) {
		version, payload, err := codec.CheckDecode(in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %s", version, hex.EncodeToString(payload)), nil
	},
	"validate": func(in string) (string, error) {
		return strconv.FormatBool(base58.IsBase58String(in)), nil
	},
}

var commands = []cli.Command{
	{
		Name:      "encode",
		Aliases:   []string{"e"},
		Usage:     "encodes text, or raw bytes given in hex",
		ArgsUsage: "[input]",
		Flags:     []cli.Flag{hexFlag, startFlag, endFlag},
		Action:    encodeAction,
	},
	{
		Name:      "decode",
		Aliases:   []string{"d"},
		Usage:     "decodes into text, or raw bytes printed in hex",
		ArgsUsage: "[input]",
		Flags:     []cli.Flag{hexFlag, startFlag, endFlag},
		Action:    decodeAction,
	},
	{
		Name:      "encode-int",
		Usage:     "encodes a safe integer, use -- before negative numbers",
		ArgsUsage: "[integer]",
		Action:    run("encode-int"),
	},
	{
		Name:      "decode-int",
		Usage:     "decodes a safe integer",
		ArgsUsage: "[input]",
		Action:    run("decode-int"),
	},
	{
		Name:      "encode-bigint",
		Usage:     "encodes an integer of any size, use -- before negative numbers",
		ArgsUsage: "[integer]",
		Action:    run("encode-bigint"),
	},
	{
		Name:      "decode-bigint",
		Usage:     "decodes an integer of any size",
		ArgsUsage: "[input]",
		Action:    run("decode-bigint"),
	},
	{
		Name:      "check-encode",
		Usage:     "encodes a hex payload with a version prefix and a checksum",
		ArgsUsage: "[hex payload]",
		Flags:     []cli.Flag{prefixFlag},
		Action:    checkEncodeAction,
	},
	{
		Name:      "check-decode",
		Usage:     "verifies and decodes a check-encoded string into version and hex payload",
		ArgsUsage: "[input]",
		Action:    run("check-decode"),
	},
	{
		Name:   "random",
		Usage:  "prints a random identifier",
		Flags:  []cli.Flag{sizeFlag},
		Action: randomAction,
	},
	{
		Name:      "alphabet",
		Usage:     "validates the given alphabet, or prints the one in use",
		ArgsUsage: "[alphabet]",
		Action:    alphabetAction,
	},
	{
		Name:      "validate",
		Usage:     "tells whether the input only holds reference alphabet characters",
		ArgsUsage: "[input]",
		Action:    run("validate"),
	},
	{
		Name:   "interactive",
		Usage:  "runs operations from a prompt",
		Action: interactiveAction,
	},
}

// run wraps a registered operation into a command action.
func run(name string) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		in, err := readInput(ctx)
		if err != nil {
			return err
		}

		out, err := operations[name](in)
		if err != nil {
			diagnostics.LogCodecError(name, err)
			return err
		}

		_, err = fmt.Fprintln(ctx.App.Writer, out)
		return err
	}
}

// bounds returns the start and end flags, an unset end meaning the whole input.
func bounds(ctx *cli.Context) (int, int) {
	end := math.MaxInt32
	if ctx.IsSet(endFlag.Name) {
		end = ctx.Int(endFlag.Name)
	}
	return ctx.Int(startFlag.Name), end
}

func encodeAction(ctx *cli.Context) error {
	in, err := readInput(ctx)
	if err != nil {
		return err
	}

	start, end := bounds(ctx)
	out := codec.EncodeTextRange(in, start, end)
	if ctx.Bool(hexFlag.Name) {
		src, err := hex.DecodeString(strings.TrimSpace(in))
		if err != nil {
			return errors.Wrap(err, "invalid hex input")
		}
		out = codec.EncodeToStringRange(src, start, end)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}

func decodeAction(ctx *cli.Context) error {
	in, err := readInput(ctx)
	if err != nil {
		return err
	}

	start, end := bounds(ctx)
	var out string
	if ctx.Bool(hexFlag.Name) {
		var raw []byte
		if raw, err = codec.DecodeFromStringRange(in, start, end); err == nil {
			out = hex.EncodeToString(raw)
		}
	} else {
		out, err = codec.DecodeTextRange(in, start, end)
	}

	if err != nil {
		diagnostics.LogCodecError("decode", err)
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}

func checkEncodeAction(ctx *cli.Context) error {
	in, err := readInput(ctx)
	if err != nil {
		return err
	}

	version := ctx.Uint(prefixFlag.Name)
	if version > math.MaxUint8 {
		return errors.Errorf("prefix %d does not fit a byte", version)
	}

	payload, err := hex.DecodeString(strings.TrimSpace(in))
	if err != nil {
		return errors.Wrap(err, "invalid hex payload")
	}

	out, err := codec.CheckEncode(byte(version), payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}

func randomAction(ctx *cli.Context) error {
	size := ctx.Int(sizeFlag.Name)
	if size < 0 {
		return errors.Errorf("negative size %d", size)
	}
	if err := checkSize(strings.Repeat(" ", size)); err != nil {
		return err
	}

	b, err := crypto.RandEntropy(uint32(size))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, codec.EncodeToString(b))
	return err
}

func alphabetAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		_, err := fmt.Fprintln(ctx.App.Writer, codec.Alphabet())
		return err
	}

	if _, err := base58.NewAlphabet(ctx.Args().First()); err != nil {
		diagnostics.LogCodecError("alphabet", err)
		return err
	}
	_, err := fmt.Fprintln(ctx.App.Writer, "valid")
	return err
}
