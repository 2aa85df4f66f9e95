// Package cmd is the base package for the txrecon executables.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-txrecon/config"
	"github.com/spacemeshos/go-txrecon/config/presets"
	"github.com/spacemeshos/go-txrecon/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// LoadConfig builds the config from, in increasing priority: the defaults or
// the preset, the config file, and the flags that were set on the command line.
func LoadConfig(flags *pflag.FlagSet, preset, path string) (*config.Config, error) {
	conf := config.DefaultConfig()
	if preset != "" {
		p, err := presets.Get(preset)
		if err != nil {
			return nil, log.ErrBadFlags(err)
		}
		conf = p
	}
	if path != "" {
		vip := viper.New()
		if err := config.LoadConfig(path, vip); err != nil {
			return nil, log.ErrMalformedConfig(err)
		}
		if err := config.Decode(vip, &conf); err != nil {
			return nil, log.ErrMalformedConfig(err)
		}
	}
	if err := reapplyFlags(flags, &conf); err != nil {
		return nil, log.ErrBadFlags(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, log.ErrInvalidConfig(err)
	}
	return &conf, nil
}

// reapplyFlags sets the flags changed on the command line on top of conf.
func reapplyFlags(flags *pflag.FlagSet, conf *config.Config) error {
	target := pflag.NewFlagSet("config", pflag.ContinueOnError)
	AddFlags(target, conf)
	var errs []error
	flags.Visit(func(f *pflag.Flag) {
		if target.Lookup(f.Name) == nil {
			return
		}
		if err := target.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
