// Package config loads tool settings from the environment, after reading an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/geange/regexfa"
	"github.com/geange/regexfa/internal/logger"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed value is out of range
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	LogLevel  string `env:"REGEXFA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"REGEXFA_LOG_FORMAT" envDefault:"text"`

	// EpsilonClosure selects textbook subset construction instead of
	// treating $ as an ordinary symbol.
	EpsilonClosure bool `env:"REGEXFA_EPSILON_CLOSURE" envDefault:"false"`
	ReachableOnly  bool `env:"REGEXFA_REACHABLE_ONLY" envDefault:"false"`

	SoftStateLimit int `env:"REGEXFA_SOFT_STATE_LIMIT" envDefault:"20"`
	// HardStateLimit turns the soft limit warning into a refusal above the
	// given NFA size. 0 disables it.
	HardStateLimit int `env:"REGEXFA_HARD_STATE_LIMIT" envDefault:"0"`

	Indent int `env:"REGEXFA_INDENT" envDefault:"4"`
}

// Load reads .env if present and parses the environment.
func Load() (Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.SoftStateLimit < 0 || c.HardStateLimit < 0 {
		return fmt.Errorf("%w: state limits must not be negative", ErrInvalidConfig)
	}
	if c.Indent < 0 || c.Indent > 16 {
		return fmt.Errorf("%w: indent %d out of range [0, 16]", ErrInvalidConfig, c.Indent)
	}
	return nil
}

// LoggerOptions returns the logger settings of c.
func (c Config) LoggerOptions() []logger.Option {
	level, _ := logger.ParseLevel(c.LogLevel)
	return []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(c.LogFormat)),
	}
}

// Options returns the automaton construction settings of c.
func (c Config) Options(log *slog.Logger) []regexfa.Option {
	opts := []regexfa.Option{
		regexfa.WithLogger(log),
		regexfa.WithStateLimits(c.SoftStateLimit, c.HardStateLimit),
	}
	if c.EpsilonClosure {
		opts = append(opts, regexfa.WithEpsilonClosure())
	}
	if c.ReachableOnly {
		opts = append(opts, regexfa.WithReachableOnly())
	}
	return opts
}
