// Package config contains the txrecon-sim configuration definitions.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-txrecon/metrics"
	"github.com/spacemeshos/go-txrecon/relay"
	"github.com/spacemeshos/go-txrecon/sim"
	"github.com/spacemeshos/go-txrecon/txrecon"
	"github.com/spacemeshos/go-txrecon/txrecon/driver"
)

// Config defines the top level configuration.
type Config struct {
	BaseConfig `mapstructure:"main"`
	LOGGING    LoggerConfig   `mapstructure:"logging"`
	Tracker    txrecon.Config `mapstructure:"tracker"`
	Driver     driver.Config  `mapstructure:"driver"`
	Relay      relay.Config   `mapstructure:"relay"`
	Sim        sim.Config     `mapstructure:"sim"`
}

// BaseConfig defines the process wide options.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`

	CollectMetrics bool   `mapstructure:"metrics"`
	MetricsAddress string `mapstructure:"metrics-address"`

	MetricsPush metrics.PushConfig `mapstructure:"metrics-push"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		LOGGING:    DefaultLoggingConfig(),
		Tracker:    txrecon.DefaultConfig(),
		Driver:     driver.DefaultConfig(),
		Relay:      relay.DefaultConfig(),
		Sim:        sim.DefaultConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		CollectMetrics: false,
		MetricsAddress: "127.0.0.1:1010",
		MetricsPush: metrics.PushConfig{
			Period: time.Minute,
		},
	}
}

// Validate checks every section of the config.
func (cfg *Config) Validate() error {
	var errs []error
	if err := cfg.Tracker.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tracker: %w", err))
	}
	if cfg.Driver.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("driver: tick interval must be positive, got %v", cfg.Driver.TickInterval))
	}
	if cfg.Relay.FanoutCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("relay: fanout cache size must be positive, got %d", cfg.Relay.FanoutCacheSize))
	}
	if err := cfg.Sim.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sim: %w", err))
	}
	if cfg.MetricsPush.URL != "" && cfg.MetricsPush.Period <= 0 {
		errs = append(errs, errors.New("metrics push period must be positive"))
	}
	if err := cfg.LOGGING.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfig reads the config file into vip.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %w", err)
	}
	return nil
}

// DecodeHook converts strings from files and flags into config field types.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// Decode applies the values loaded into vip on top of conf. Unknown keys are
// rejected.
func Decode(vip *viper.Viper, conf *Config) error {
	errorUnused := func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	}
	if err := vip.Unmarshal(conf, viper.DecodeHook(DecodeHook()), errorUnused); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
