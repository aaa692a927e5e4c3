package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration of truthrun. Flags given on
// the command line override it.
type Config struct {
	// Dialect switches non-standard Starlark features on.
	Dialect DialectConfig `yaml:"dialect"`
	// Color is one of auto, always or never.
	Color string `yaml:"color"`
	Log   LogConfig `yaml:"log"`
}

type DialectConfig struct {
	Set            bool `yaml:"set"`
	Recursion      bool `yaml:"recursion"`
	GlobalReassign bool `yaml:"global_reassign"`
}

// LogConfig selects the diagnostics logger.
type LogConfig struct {
	// debug, info, warn or error
	Level string `yaml:"level"`
	// console or json
	Format string `yaml:"format"`
}

// ValidColors lists the accepted values of Config.Color.
var ValidColors = []string{"auto", "always", "never"}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Dialect: DialectConfig{Set: true},
		Color:   "auto",
		Log:     LogConfig{Level: "warn", Format: "console"},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !contains(ValidColors, c.Color) {
		return fmt.Errorf("invalid color %q: must be one of %v", c.Color, ValidColors)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}
	return nil
}

// Logger builds the diagnostics logger. It writes to stderr.
func (c LogConfig) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if c.Format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      c.Format == "console",
		Encoding:         c.Format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapConfig.Build()
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
