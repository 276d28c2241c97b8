// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the fwbench CLI.
//
// Values resolve with priority: explicitly set flags > YAML file > defaults.
// The flag layer lives in the command; this package owns the defaults, the
// YAML loader and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation or parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is one benchmark/verification run.
type Config struct {
	// Size is the number of vertices N.
	Size int `yaml:"size" validate:"gte=1"`
	// Seed drives the graph generator; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// EdgeProbability is the chance that an ordered pair carries an edge.
	EdgeProbability float64 `yaml:"edge_probability" validate:"gte=0,lte=1"`
	// MinWeight is the inclusive lower bound of edge weights.
	MinWeight int64 `yaml:"min_weight" validate:"gte=1"`
	// MaxWeight is the exclusive upper bound of edge weights.
	MaxWeight int64 `yaml:"max_weight" validate:"gtfield=MinWeight"`
	// Workers bounds parallel tasks per pivot; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`
	// Partition is "rows" or "blocks".
	Partition string `yaml:"partition" validate:"oneof=rows blocks"`
	// Repeat runs the verification this many times on fresh graphs.
	Repeat int `yaml:"repeat" validate:"gte=1"`
	// Timeout aborts the whole run; 0 disables it.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// Format selects the reporter: "text" or "yaml".
	Format string `yaml:"format" validate:"oneof=text yaml"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Telemetry selects the exporter: "none" or "stdout".
	Telemetry string `yaml:"telemetry" validate:"oneof=none stdout"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Size:            500,
		Seed:            0,
		EdgeProbability: 0.8,
		MinWeight:       1,
		MaxWeight:       10,
		Workers:         0,
		Partition:       "rows",
		Repeat:          1,
		Timeout:         0,
		Format:          "text",
		LogLevel:        "info",
		Telemetry:       "none",
	}
}

// Load reads a YAML file over Default() and validates the result.
// Keys absent from the file keep their default values; unknown keys are an
// error so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level; unknown values fall back to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EffectiveSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}

	return time.Now().UnixNano()
}
