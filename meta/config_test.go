package meta

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"numgame/game"
	"numgame/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without files or variables", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, game.NewStandardRules(), cfg.Rules(), "Defaults should match the standard rules")
		require.Equal(t, searcher.DefaultDepth, cfg.SearchDepth, "Default depth should match the searcher's")
	})

	t.Run("overrides from the environment", func(t *testing.T) {
		t.Setenv("NUMGAME_END_NUMBER", "5000")
		t.Setenv("NUMGAME_SEARCH_DEPTH", "4")
		t.Setenv("NUMGAME_DEBUG", "true")
		t.Setenv("NUMGAME_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		require.Equal(t, 5000, cfg.EndNumber)
		require.Equal(t, 4, cfg.SearchDepth)
		require.True(t, cfg.Debug)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	})

	t.Run("overrides from a .env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("NUMGAME_MAX_START_NUMBER=40\n"), 0644))
		t.Setenv("NUMGAME_MAX_START_NUMBER", "")
		os.Unsetenv("NUMGAME_MAX_START_NUMBER")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 40, cfg.MaxStartNumber)
	})

	t.Run("malformed values", func(t *testing.T) {
		t.Setenv("NUMGAME_MIN_FACTOR", "three")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.ErrorContains(t, err, "NUMGAME_MIN_FACTOR")
	})

	t.Run("inconsistent values", func(t *testing.T) {
		t.Setenv("NUMGAME_MIN_FACTOR", "6")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.ErrorContains(t, err, "exceeds max factor")
	})
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	for name, mutate := range map[string]func(*Config){
		"factor below two":    func(c *Config) { c.MinFactor = 1 },
		"empty start range":   func(c *Config) { c.MinStartNumber = 31 },
		"zero start":          func(c *Config) { c.MinStartNumber = 0 },
		"end below the start": func(c *Config) { c.EndNumber = 30 },
		"end overflows":       func(c *Config) { c.EndNumber = math.MaxInt / 2 },
		"zero depth":          func(c *Config) { c.SearchDepth = 0 },
	} {
		cfg := Default()
		mutate(&cfg)
		require.Error(t, cfg.Validate(), name)
	}
}
