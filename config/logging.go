package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-txrecon/log"
)

const defaultLoggingLevel = zapcore.InfoLevel

// LoggerConfig holds the encoder and the logging level for each module.
type LoggerConfig struct {
	Encoder log.Encoder `mapstructure:"log-encoder"`

	AppLoggerLevel     string `mapstructure:"app"`
	TrackerLoggerLevel string `mapstructure:"tracker"`
	DriverLoggerLevel  string `mapstructure:"driver"`
	RelayLoggerLevel   string `mapstructure:"relay"`
	MetricsLoggerLevel string `mapstructure:"metrics"`
}

func DefaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:            log.ConsoleEncoder,
		AppLoggerLevel:     defaultLoggingLevel.String(),
		TrackerLoggerLevel: defaultLoggingLevel.String(),
		DriverLoggerLevel:  defaultLoggingLevel.String(),
		RelayLoggerLevel:   defaultLoggingLevel.String(),
		MetricsLoggerLevel: defaultLoggingLevel.String(),
	}
}

// Levels returns the level of every module keyed by the module name.
func (c LoggerConfig) Levels() map[string]string {
	return map[string]string{
		"app":     c.AppLoggerLevel,
		"tracker": c.TrackerLoggerLevel,
		"driver":  c.DriverLoggerLevel,
		"relay":   c.RelayLoggerLevel,
		"metrics": c.MetricsLoggerLevel,
	}
}

func (c LoggerConfig) Validate() error {
	if _, err := log.NewEncoder(c.Encoder); err != nil {
		return err
	}
	for module, level := range c.Levels() {
		if _, err := zapcore.ParseLevel(level); err != nil {
			return fmt.Errorf("%s level: %w", module, err)
		}
	}
	return nil
}
