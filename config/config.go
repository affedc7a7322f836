package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dropgames/meta"
	"dropgames/searcher/agent"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel        zerolog.Level
	Connect4Depths  agent.Depths
	TootOttoDepths  agent.Depths
	SearchSeed      uint64 // 0 means seed from the clock
	SearchPruning   bool
	ExperimentGames int
	ExperimentDir   string
}

// LoadConfig reads .env when present, then the process environment. Values
// that do not parse fall back to their defaults with a warning.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(GetEnv("LOG_LEVEL", "info")))
	if err != nil {
		log.Warn().Msgf("Invalid LOG_LEVEL %q, using info", os.Getenv("LOG_LEVEL"))
		level = zerolog.InfoLevel
	}

	return &Config{
		LogLevel: level,
		Connect4Depths: agent.Depths{
			Easy:   GetEnvAsInt("C4_DEPTH_EASY", meta.C4_DEPTH_EASY),
			Medium: GetEnvAsInt("C4_DEPTH_MEDIUM", meta.C4_DEPTH_MEDIUM),
			Hard:   GetEnvAsInt("C4_DEPTH_HARD", meta.C4_DEPTH_HARD),
		},
		TootOttoDepths: agent.Depths{
			Easy:   GetEnvAsInt("TOOT_DEPTH_EASY", meta.TOOT_DEPTH_EASY),
			Medium: GetEnvAsInt("TOOT_DEPTH_MEDIUM", meta.TOOT_DEPTH_MEDIUM),
			Hard:   GetEnvAsInt("TOOT_DEPTH_HARD", meta.TOOT_DEPTH_HARD),
		},
		SearchSeed:      GetEnvAsUint64("SEARCH_SEED", 0),
		SearchPruning:   GetEnvAsBool("SEARCH_PRUNING", true),
		ExperimentGames: GetEnvAsInt("EXPERIMENT_GAMES", meta.EXPERIMENT_GAMES),
		ExperimentDir:   GetEnv("EXPERIMENT_DIR", "experiments/runs"),
	}
}

func (c *Config) Validate() error {
	if err := c.Connect4Depths.Validate(); err != nil {
		return fmt.Errorf("connect4: %w", err)
	}
	if err := c.TootOttoDepths.Validate(); err != nil {
		return fmt.Errorf("toot-otto: %w", err)
	}
	if c.ExperimentGames < 1 {
		return fmt.Errorf("EXPERIMENT_GAMES must be at least 1, got %d", c.ExperimentGames)
	}
	return nil
}

// Depths returns the depth table for the named game.
func (c *Config) Depths(game string) (agent.Depths, error) {
	switch strings.ToLower(game) {
	case "connect4", "c4":
		return c.Connect4Depths, nil
	case "toototto", "toot", "to":
		return c.TootOttoDepths, nil
	}
	return agent.Depths{}, fmt.Errorf("unknown game %q", game)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("Invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
