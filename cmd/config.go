package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
)

// Config holds the settings read from a configuration file.  Zero values are
// replaced by defaults.
type Config struct {
	Prompt            string   `yaml:"prompt"`
	MaxStackHeight    int      `yaml:"max_stack_height"`
	DivisionPrecision int32    `yaml:"division_precision"`
	LogLevel          string   `yaml:"log_level"`
	Preload           []string `yaml:"preload"`
}

// Default settings
const (
	DefaultPrompt         = "> "
	DefaultMaxStackHeight = 10000
	DefaultLogLevel       = "warn"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:            DefaultPrompt,
		MaxStackHeight:    DefaultMaxStackHeight,
		DivisionPrecision: lisp.DefaultDivisionPrecision,
		LogLevel:          DefaultLogLevel,
	}
}

// LoadConfig reads a YAML configuration file.  Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	conf := DefaultConfig()
	if err := decoder.Decode(conf); err != nil {
		if errors.Is(err, io.EOF) {
			return conf, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.MaxStackHeight < 0 {
		return fmt.Errorf("max_stack_height must not be negative: %d", c.MaxStackHeight)
	}
	if c.DivisionPrecision < 1 {
		return fmt.Errorf("division_precision must be positive: %d", c.DivisionPrecision)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// InterpreterOptions returns the lisp.Configs that apply c to an interpreter.
func (c *Config) InterpreterOptions() []lisp.Config {
	return []lisp.Config{
		lisp.WithMaximumStackHeight(c.MaxStackHeight),
		lisp.WithDivisionPrecision(c.DivisionPrecision),
	}
}

// NewLogger builds a console logger writing to stderr at the configured
// level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to construct logger: %v", err)
	}
	return logger, nil
}
