package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/regexfa"
	"github.com/geange/regexfa/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.EpsilonClosure)
	assert.False(t, cfg.ReachableOnly)
	assert.Equal(t, regexfa.DefaultSoftStateLimit, cfg.SoftStateLimit)
	assert.Equal(t, regexfa.DefaultHardStateLimit, cfg.HardStateLimit)
	assert.Zero(t, cfg.HardStateLimit)
	assert.Equal(t, 4, cfg.Indent)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REGEXFA_LOG_LEVEL", "debug")
	t.Setenv("REGEXFA_LOG_FORMAT", "json")
	t.Setenv("REGEXFA_EPSILON_CLOSURE", "true")
	t.Setenv("REGEXFA_HARD_STATE_LIMIT", "24")
	t.Setenv("REGEXFA_INDENT", "2")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.EpsilonClosure)
	assert.Equal(t, 24, cfg.HardStateLimit)
	assert.Equal(t, 2, cfg.Indent)
	assert.Len(t, cfg.Options(nil), 3)
	assert.Len(t, cfg.LoggerOptions(), 2)
}

func TestLoadErrors(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("REGEXFA_INDENT", "four")
		_, err := config.Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("invalid", func(t *testing.T) {
		tests := map[string]string{
			"REGEXFA_LOG_LEVEL":        "loud",
			"REGEXFA_LOG_FORMAT":       "xml",
			"REGEXFA_SOFT_STATE_LIMIT": "-1",
			"REGEXFA_INDENT":           "40",
		}
		for key, value := range tests {
			t.Run(key, func(t *testing.T) {
				t.Chdir(t.TempDir())
				t.Setenv(key, value)
				_, err := config.Load()
				require.Error(t, err)
				assert.True(t, errors.Is(err, config.ErrInvalidConfig))
			})
		}
	})
}
