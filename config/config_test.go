package config

import (
	"testing"

	"dropgames/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()

		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
		require.Equal(t, agent.DefaultConnect4Depths, cfg.Connect4Depths)
		require.Equal(t, agent.DefaultTootOttoDepths, cfg.TootOttoDepths)
		require.Equal(t, uint64(0), cfg.SearchSeed)
		require.True(t, cfg.SearchPruning)
		require.Equal(t, 10, cfg.ExperimentGames)
		require.Equal(t, "experiments/runs", cfg.ExperimentDir)
		require.NoError(t, cfg.Validate())
	})

	t.Run("from the environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("C4_DEPTH_HARD", "9")
		t.Setenv("TOOT_DEPTH_MEDIUM", "3")
		t.Setenv("SEARCH_SEED", "1234")
		t.Setenv("SEARCH_PRUNING", "false")
		t.Setenv("EXPERIMENT_GAMES", "4")
		t.Setenv("EXPERIMENT_DIR", "/tmp/runs")

		cfg := LoadConfig()

		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
		require.Equal(t, 9, cfg.Connect4Depths.Hard)
		require.Equal(t, 3, cfg.TootOttoDepths.Medium)
		require.Equal(t, uint64(1234), cfg.SearchSeed)
		require.False(t, cfg.SearchPruning)
		require.Equal(t, 4, cfg.ExperimentGames)
		require.Equal(t, "/tmp/runs", cfg.ExperimentDir)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		t.Setenv("C4_DEPTH_EASY", "two")
		t.Setenv("SEARCH_SEED", "-1")
		t.Setenv("SEARCH_PRUNING", "maybe")

		cfg := LoadConfig()

		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
		require.Equal(t, 1, cfg.Connect4Depths.Easy)
		require.Equal(t, uint64(0), cfg.SearchSeed)
		require.True(t, cfg.SearchPruning)
	})
}

func TestValidate(t *testing.T) {
	t.Setenv("TOOT_DEPTH_HARD", "1")
	cfg := LoadConfig()
	require.ErrorContains(t, cfg.Validate(), "toot-otto")

	cfg = LoadConfig()
	cfg.TootOttoDepths = agent.DefaultTootOttoDepths
	cfg.ExperimentGames = 0
	require.Error(t, cfg.Validate())
}

func TestDepths(t *testing.T) {
	cfg := LoadConfig()

	d, err := cfg.Depths("C4")
	require.NoError(t, err)
	require.Equal(t, cfg.Connect4Depths, d)

	d, err = cfg.Depths("toot")
	require.NoError(t, err)
	require.Equal(t, cfg.TootOttoDepths, d)

	_, err = cfg.Depths("chess")
	require.Error(t, err)
}
