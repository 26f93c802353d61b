package notation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExponentCommas controls how exponents are written by [Formatter.FormatExponentPlaces].
//
//   - Exponents below Min are written in full.
//   - Exponents in [Min, Max) are written in full with comma separated
//     groups when Show is true.
//   - All other exponents are formatted recursively by the same style.
type ExponentCommas struct {
	Show bool  `yaml:"show"`
	Min  int64 `yaml:"min"`
	Max  int64 `yaml:"max"`
}

// Config holds the settings shared by every style of a [Formatter].
// A formatter copies its config at construction and never modifies it.
type Config struct {
	// InfiniteThreshold is the smallest absolute value treated as infinite.
	InfiniteThreshold Magnitude      `yaml:"infiniteThreshold"`
	ExponentCommas    ExponentCommas `yaml:"exponentCommas"`
	// ExponentDefaultPlaces is used by [Formatter.FormatExponent].
	ExponentDefaultPlaces int `yaml:"exponentDefaultPlaces"`
}

// DefaultConfig returns the default formatting configuration.
func DefaultConfig() Config {
	return Config{
		InfiniteThreshold: New(1, 9_000_000_000_000_000),
		ExponentCommas: ExponentCommas{
			Show: true,
			Min:  100_000,
			Max:  1_000_000_000,
		},
		ExponentDefaultPlaces: 3,
	}
}

// ParseConfig decodes a YAML document on top of [DefaultConfig].
// Keys missing from the document keep their default values.
//
// ParseConfig returns an error if the document is malformed or the
// resulting config fails [Config.Validate].
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w: %w", ErrInvalidArgument, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs semantic validation on the configuration.
func (c Config) Validate() error {
	if !c.InfiniteThreshold.IsPos() {
		return fmt.Errorf("infiniteThreshold must be > 0: %w", ErrInvalidArgument)
	}
	if c.ExponentCommas.Min < 0 {
		return fmt.Errorf("exponentCommas min must be >= 0: %w", ErrInvalidArgument)
	}
	if c.ExponentCommas.Max < c.ExponentCommas.Min {
		return fmt.Errorf("exponentCommas max must be >= min: %w", ErrInvalidArgument)
	}
	if c.ExponentDefaultPlaces < 0 {
		return fmt.Errorf("exponentDefaultPlaces must be >= 0: %w", ErrInvalidArgument)
	}
	return nil
}

// IsInfinite reports whether |v| reaches the infinite threshold.
func (c Config) IsInfinite(v Magnitude) bool {
	return cmpAbs(v, c.InfiniteThreshold) >= 0
}

// noSpecialFormatting reports whether exp is written as is.
func (c Config) noSpecialFormatting(exp int64) bool {
	return exp < c.ExponentCommas.Min
}

// showCommas reports whether exp is written in full with commas.
func (c Config) showCommas(exp int64) bool {
	return c.ExponentCommas.Show && exp < c.ExponentCommas.Max
}

// ExponentFullyShown reports whether exp is written with all of its digits.
func (c Config) ExponentFullyShown(exp int64) bool {
	return c.noSpecialFormatting(exp) || c.showCommas(exp)
}

// Option mutates a Config when applied by [NewFormatter].
type Option func(*Config)

// Apply applies the provided options to a copy of the base config.
func Apply(base Config, opts ...Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithConfig replaces the whole config.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
	}
}

// WithInfiniteThreshold sets the smallest absolute value treated as infinite.
func WithInfiniteThreshold(threshold Magnitude) Option {
	return func(cfg *Config) {
		cfg.InfiniteThreshold = threshold
	}
}

// WithExponentCommas configures comma grouping of exponents.
func WithExponentCommas(show bool, minExp, maxExp int64) Option {
	return func(cfg *Config) {
		cfg.ExponentCommas = ExponentCommas{Show: show, Min: minExp, Max: maxExp}
	}
}

// WithExponentDefaultPlaces sets the precision of [Formatter.FormatExponent].
func WithExponentDefaultPlaces(places int) Option {
	return func(cfg *Config) {
		cfg.ExponentDefaultPlaces = places
	}
}
