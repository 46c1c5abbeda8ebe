// Package config loads runtime settings from the environment. A .env file in
// the working directory is read first when present; real environment
// variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"load-profiler/internal/logger"
)

const envPrefix = "LPD"

// Config holds every tunable the application reads at start-up.
type Config struct {
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"console"`
	Interval     time.Duration `envconfig:"INTERVAL" default:"15m"`
	ScaleFactor  float64       `envconfig:"SCALE_FACTOR" default:"0"`
	WriteOutputs bool          `envconfig:"WRITE_OUTPUTS" default:"true"`
}

// Load reads .env files (if any) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot constrain on its own.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format '%s'", c.LogFormat)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.ScaleFactor != 0 && (c.ScaleFactor < 1.0 || c.ScaleFactor > 2.0) {
		return fmt.Errorf("scale factor must be between 1.0 and 2.0, got %g", c.ScaleFactor)
	}
	return nil
}

// Level returns the parsed log level. Validate has already rejected bad input.
func (c *Config) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}
