// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"io"
	"os"

	cfg "github.com/dusk-network/dusk-base58/pkg/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the logger settings from the configuration and directs
// the standard logger to out.
func InitLog(out io.Writer) {
	SetToLevel(cfg.Get().Logger.Level)
	SetToFormat(cfg.Get().Logger.Format)
	log.SetOutput(out)
}

// SetToLevel sets the standard logger level, falling back to trace on an
// unknown level.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}

// SetToFormat selects the JSON formatter for "json", the text one otherwise.
func SetToFormat(f string) {
	if f == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{})
}

// OpenOutput resolves a logger.output setting: "stderr", "stdout" or a file
// path, opened for appending. The returned close function is never nil.
func OpenOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch output {
	case "", "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, errors.Wrapf(err, "could not open log output %s", output)
	}
	return f, f.Close, nil
}
