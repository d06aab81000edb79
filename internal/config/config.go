// Package config holds trainer settings and loads them from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/simpletype/internal/problemgen"
	"github.com/abhisek/simpletype/internal/typing"
)

// Config holds all trainer configuration.
type Config struct {
	// Match selects which characters must be typed in reading mode.
	Match typing.Config

	// Format is the math answer format: numeric (standard) or multiple choice (tiles).
	Format problemgen.AnswerFormat

	// Seed seeds the random source. 0 means seed from the clock.
	Seed uint64

	Verbose bool
}

// DefaultConfig returns a Config with the lenient defaults: case, spaces and
// punctuation are all ignored, and math answers are typed.
func DefaultConfig() Config {
	return Config{
		Format: problemgen.FormatNumeric,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	bools := []struct {
		key string
		dst *bool
	}{
		{"SIMPLETYPE_CAPITALS", &cfg.Match.CapitalLetters},
		{"SIMPLETYPE_SPACES", &cfg.Match.Spaces},
		{"SIMPLETYPE_PUNCTUATION", &cfg.Match.Punctuation},
		{"SIMPLETYPE_VERBOSE", &cfg.Verbose},
	}
	for _, b := range bools {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = parsed
	}

	if m := os.Getenv("SIMPLETYPE_MODE"); m != "" {
		f, err := ParseMode(m)
		if err != nil {
			return Config{}, fmt.Errorf("SIMPLETYPE_MODE: %w", err)
		}
		cfg.Format = f
	}

	if s := os.Getenv("SIMPLETYPE_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SIMPLETYPE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// ParseMode maps a math mode name to its answer format.
func ParseMode(s string) (problemgen.AnswerFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", string(problemgen.FormatNumeric):
		return problemgen.FormatNumeric, nil
	case "tiles", string(problemgen.FormatMultipleChoice):
		return problemgen.FormatMultipleChoice, nil
	default:
		return "", fmt.Errorf("unknown math mode %q (want standard or tiles)", s)
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Format {
	case problemgen.FormatNumeric, problemgen.FormatMultipleChoice:
	default:
		return fmt.Errorf("unknown answer format: %q", c.Format)
	}
	return nil
}
