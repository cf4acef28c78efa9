// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver"
	cfg "github.com/dusk-network/dusk-base58/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log = logrus.WithFields(logrus.Fields{
	"app":    "base58",
	"prefix": "main",
})

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "base58"
	app.Usage = "Base58 encoding and decoding of bytes, text and integers"
	app.Copyright = "Copyright (c) 2020 DUSK"
	app.Author = "DUSK 2020"
	app.Version = semver.MustParse(cfg.Version).String()
	app.Writer = w
	app.Flags = GlobalFlags
	app.Commands = commands
	app.Before = setup
	app.After = teardown
	return app
}

func main() {
	defer handlePanic()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		log.WithError(fmt.Errorf("%+v", r)).Errorln("Application panic")
		os.Exit(2)
	}
}
