// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config package should avoid importing any dusk-base58 packages in order to
// prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.base58/"

	// name for the config file. Does not include extension.
	configFileName = "base58"

	envPrefix = "BASE58"
)

var r *Registry

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	General generalConfiguration
	Logger  loggerConfiguration
	Limits  limitsConfiguration
}

// Load makes an attempt to read and unmarshal any configs from flag, env and
// base58 config file.
//
// It uses the following precedence order. Each item takes precedence over the item below it:
//   - flag
//   - env
//   - config
//   - default
//
// An empty confFile searches for base58.{toml,yaml,json} in the current
// directory and in $HOME/.base58/; not finding one there is not an error.
// flags may be nil.
func Load(confFile string, flags *pflag.FlagSet) error {
	reg := new(Registry)
	if err := reg.init(confFile, flags); err != nil {
		return err
	}

	r = reg
	return nil
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

// DefineFlags declares on fs the flags overriding config file settings.
func DefineFlags(fs *pflag.FlagSet) {
	_ = fs.StringP("general.alphabet", "a", DefaultAlphabet, "override general.alphabet settings in config file")
	_ = fs.StringP("logger.level", "l", "info", "override logger.level settings in config file")
	_ = fs.StringP("logger.output", "o", "stderr", "specifies the log output")
	_ = fs.String("logger.format", "text", "specifies the log format (text or json)")
	_ = fs.Int("limits.maxinputsize", DefaultMaxInputSize, "largest input accepted, in bytes")
}

func (reg *Registry) init(confFile string, flags *pflag.FlagSet) error {
	viper.Reset()
	setDefaults()

	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)
	} else {
		// Make an attempt to find base58.toml/base58.json/base58.yaml in any
		// of the provided paths below
		viper.SetConfigName(configFileName)
		viper.AddConfigPath(searchPath1)
		viper.AddConfigPath(searchPath2)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || len(confFile) > 0 {
			return errors.Wrap(err, "error reading config file")
		}
	}

	defineENV()

	// Bind all command line parameters to their corresponding file configs
	//
	// e.g CLI argument `--logger.level="warn"` will overwrite the value from
	// `[logger] level = "info"` in the loaded config file
	if flags != nil {
		if err := viper.BindPFlags(flags); err != nil {
			return errors.Wrap(err, "unable to bind pflags")
		}
	}

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := viper.Unmarshal(reg); err != nil {
		return errors.Wrap(err, "unable to decode into struct")
	}

	reg.UsedConfigFile = viper.ConfigFileUsed()
	return nil
}

func setDefaults() {
	viper.SetDefault("general.alphabet", DefaultAlphabet)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output", "stderr")
	viper.SetDefault("logger.format", "text")
	viper.SetDefault("limits.maxinputsize", DefaultMaxInputSize)
}

// Bind every config key to an environment variable, e.g. logger.level to
// BASE58_LOGGER_LEVEL
func defineENV() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

func init() {
	// By default Registry should be empty but not nil. In that way, consumers
	// (packages) can use their default values on unit testing
	r = new(Registry)
	r.General.Alphabet = DefaultAlphabet
	r.Logger.Level = "info"
	r.Logger.Output = "stderr"
	r.Logger.Format = "text"
	r.Limits.MaxInputSize = DefaultMaxInputSize
}
