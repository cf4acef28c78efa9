// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	cfg "github.com/dusk-network/dusk-base58/pkg/config"
	"github.com/dusk-network/dusk-base58/pkg/crypto/base58"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const darkwolf = "AveDarkwo1f23456789BCEFGHJKLMNPQRSTUVWXYZbcdghijmnpqstuxyz"

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "base58.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0o600))
	return path
}

// runApp runs the command line against an empty config file, unless args
// carry their own --config.
func runApp(t *testing.T, args ...string) (string, error) {
	prev := cfg.Get()
	t.Cleanup(func() { cfg.Mock(&prev) })

	if len(args) == 0 || args[0] != "--config" {
		args = append([]string{"--config", writeConfig(t, "")}, args...)
	}

	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"base58"}, args...))
	return strings.TrimSpace(out.String()), err
}

func withStdin(t *testing.T, in string) {
	prev := stdin
	stdin = strings.NewReader(in)
	t.Cleanup(func() { stdin = prev })
}

func TestEncodeDecode(t *testing.T) {
	out, err := runApp(t, "encode", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "StV1DL6CwTryKyV", out)

	out, err = runApp(t, "decode", "StV1DL6CwTryKyV")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestHexAndRanges(t *testing.T) {
	out, err := runApp(t, "encode", "--hex", "000102")
	require.NoError(t, err)
	assert.Equal(t, "15T", out)

	out, err = runApp(t, "encode", "--hex", "--start", "-3", "0909010203")
	require.NoError(t, err)
	assert.Equal(t, "Ldp", out)

	out, err = runApp(t, "decode", "--hex", "1115T")
	require.NoError(t, err)
	assert.Equal(t, "0000000102", out)

	out, err = runApp(t, "decode", "--hex", "--start", "1", "--end", "-1", "0Ldp0")
	require.NoError(t, err)
	assert.Equal(t, "010203", out)

	_, err = runApp(t, "encode", "--hex", "zz")
	assert.Error(t, err)
}

func TestStdinInput(t *testing.T) {
	withStdin(t, "hello world\n")
	out, err := runApp(t, "encode")
	require.NoError(t, err)
	assert.Equal(t, "StV1DL6CwTryKyV", out)

	withStdin(t, "hello world\n")
	out, err = runApp(t, "encode", "--start", "6")
	require.NoError(t, err)
	assert.Equal(t, "EUYUqQf", out)

	withStdin(t, "StV1DL6CwTryKyV\r\n")
	out, err = runApp(t, "decode")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestTextRanges(t *testing.T) {
	out, err := runApp(t, "encode", "--start", "-5", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "EUYUqQf", out)

	out, err = runApp(t, "decode", "--start", "1", "--end", "-1", "0StV1DL6CwTryKyV0")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)

	// invalid UTF-8 is replaced, as with the library text codec
	out, err = runApp(t, "decode", base58.EncodeToString([]byte{'a', 0xff}))
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFD", out)
}

func TestIntegers(t *testing.T) {
	out, err := runApp(t, "encode-int", "12345")
	require.NoError(t, err)
	assert.Equal(t, "4fr", out)

	out, err = runApp(t, "encode-int", "--", "-12345")
	require.NoError(t, err)
	assert.Equal(t, "-4fr", out)

	out, err = runApp(t, "decode-int", "--", "-4fr")
	require.NoError(t, err)
	assert.Equal(t, "-12345", out)

	_, err = runApp(t, "encode-int", "9007199254740992")
	assert.ErrorIs(t, err, base58.ErrOutOfSafeIntegerRange)

	out, err = runApp(t, "encode-bigint", "18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, "jpXCZedGfVQ", out)

	out, err = runApp(t, "decode-bigint", "jpXCZedGfVQ")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", out)

	_, err = runApp(t, "encode-bigint", "12x")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, err := runApp(t, "check-encode", "0102")
	require.NoError(t, err)
	assert.Equal(t, "1WCfsuHN", out)

	out, err = runApp(t, "check-decode", "1WCfsuHN")
	require.NoError(t, err)
	assert.Equal(t, "0 0102", out)

	out, err = runApp(t, "check-encode", "--prefix", "7", "cafe")
	require.NoError(t, err)
	decoded, err := runApp(t, "check-decode", out)
	require.NoError(t, err)
	assert.Equal(t, "7 cafe", decoded)

	_, err = runApp(t, "check-encode", "--prefix", "256", "00")
	assert.Error(t, err)

	_, err = runApp(t, "check-decode", "1WCfsuHM")
	assert.ErrorIs(t, err, base58.ErrChecksum)
}

func TestInvalidSymbol(t *testing.T) {
	_, err := runApp(t, "decode", "11O1")
	require.Error(t, err)
	assert.ErrorIs(t, err, base58.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "at index 2")
}

func TestAlphabet(t *testing.T) {
	out, err := runApp(t, "alphabet")
	require.NoError(t, err)
	assert.Equal(t, base58.BitcoinAlphabet, out)

	out, err = runApp(t, "alphabet", darkwolf)
	require.NoError(t, err)
	assert.Equal(t, "valid", out)

	_, err = runApp(t, "alphabet", strings.Repeat("1", base58.Base))
	assert.ErrorIs(t, err, base58.ErrDuplicateAlphabetCharacter)

	out, err = runApp(t, "--alphabet", darkwolf, "encode", "--hex", "000102")
	require.NoError(t, err)
	assert.Equal(t, "AaK", out)

	_, err = runApp(t, "--alphabet", "abc", "encode", "x")
	assert.ErrorIs(t, err, base58.ErrInvalidAlphabetLength)
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, `
[general]
alphabet = "`+darkwolf+`"

[limits]
maxinputsize = 4
`)

	out, err := runApp(t, "--config", path, "encode", "--hex", "0000")
	require.NoError(t, err)
	assert.Equal(t, "AA", out)

	_, err = runApp(t, "--config", path, "encode", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limits.maxinputsize")

	_, err = runApp(t, "--config", path, "random", "--size", "5")
	assert.Error(t, err)

	_, err = runApp(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "alphabet")
	assert.Error(t, err)
}

func TestValidateAndRandom(t *testing.T) {
	out, err := runApp(t, "validate", "StV1DL6CwTryKyV")
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = runApp(t, "validate", "0OIl")
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	out, err = runApp(t, "random", "--size", "32")
	require.NoError(t, err)
	raw, err := base58.DecodeFromString(out)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

// scriptedPrompter replays canned answers, one Operation/Input pair per step.
type scriptedPrompter struct {
	ops    []string
	inputs []string
	err    error
}

func (p *scriptedPrompter) Operation([]string) (string, error) {
	if len(p.ops) == 0 {
		return "", p.err
	}
	op := p.ops[0]
	p.ops = p.ops[1:]
	return op, nil
}

func (p *scriptedPrompter) Input() (string, error) {
	if len(p.inputs) == 0 {
		return "", p.err
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func useCodec(t *testing.T, b *base58.Base58) {
	prev := codec
	codec = b
	t.Cleanup(func() { codec = prev })
}

func TestInteract(t *testing.T) {
	useCodec(t, base58.MustNew(""))

	p := &scriptedPrompter{
		ops:    []string{"encode", "decode-int", "validate", "exit"},
		inputs: []string{"hello world", "-4fr", "0"},
	}

	var out bytes.Buffer
	require.NoError(t, interact(p, &out))
	assert.Equal(t, "StV1DL6CwTryKyV\n-12345\nfalse\n", out.String())
}

func TestInteractKeepsGoingOnFailure(t *testing.T) {
	useCodec(t, base58.MustNew(""))

	p := &scriptedPrompter{
		ops:    []string{"decode", "decode", "exit"},
		inputs: []string{"11O1", "StV1DL6CwTryKyV"},
	}

	var out bytes.Buffer
	require.NoError(t, interact(p, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "error:"))
	assert.Contains(t, lines[0], "at index 2")
	assert.Equal(t, "hello world", lines[1])
}

func TestInteractPromptClosed(t *testing.T) {
	useCodec(t, base58.MustNew(""))

	var out bytes.Buffer
	assert.NoError(t, interact(&scriptedPrompter{err: promptui.ErrEOF}, &out))
	assert.NoError(t, interact(&scriptedPrompter{ops: []string{"encode"}, err: promptui.ErrInterrupt}, &out))
	assert.Empty(t, out.String())

	err := interact(&scriptedPrompter{err: errors.New("tty gone")}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt failed")
}

func TestMenu(t *testing.T) {
	items := menu()
	assert.Equal(t, exitItem, items[len(items)-1])
	assert.Len(t, items, len(operations)+1)
	assert.Contains(t, items, "decode-int")
}
