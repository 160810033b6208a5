package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the seatray engine and CLI configuration.
type Config struct {
	Env      string         `yaml:"env"`
	Sampling SamplingConfig `yaml:"sampling"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	Batch    BatchConfig    `yaml:"batch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SamplingConfig controls how densely a route is sampled.
type SamplingConfig struct {
	IntervalMinutes float64 `yaml:"interval_minutes"` // Sun sampling interval
	PathSteps       int     `yaml:"path_steps"`       // great-circle steps for the drawn route
}

// OverlayConfig controls the resolution of the planetary overlay.
type OverlayConfig struct {
	TerminatorStepDeg float64 `yaml:"terminator_step_deg"`
}

// BatchConfig bounds concurrent planning.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Interval returns the Sun sampling interval as a duration.
func (s SamplingConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMinutes * float64(time.Minute))
}

// Default returns a configuration with every default applied.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from the YAML file at path. An empty path
// returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, substituting ${VAR} and ${VAR:-default}
// from the environment before decoding.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from SEATRAY_ENV, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("SEATRAY_ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = GetEnv()
	}
	if c.Sampling.IntervalMinutes == 0 {
		c.Sampling.IntervalMinutes = 10
	}
	if c.Sampling.PathSteps == 0 {
		c.Sampling.PathSteps = 20
	}
	if c.Overlay.TerminatorStepDeg == 0 {
		c.Overlay.TerminatorStepDeg = 2
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 4
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Sampling.IntervalMinutes <= 0 {
		return fmt.Errorf("sampling.interval_minutes must be positive, got %v", c.Sampling.IntervalMinutes)
	}
	if c.Sampling.PathSteps < 1 {
		return fmt.Errorf("sampling.path_steps must be at least 1, got %d", c.Sampling.PathSteps)
	}
	if c.Overlay.TerminatorStepDeg <= 0 || c.Overlay.TerminatorStepDeg > 180 {
		return fmt.Errorf("overlay.terminator_step_deg must be in (0, 180], got %v", c.Overlay.TerminatorStepDeg)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
