package main

import (
	"flag"
	"fmt"
	"os"

	"dropgames/config"
	"dropgames/experiments"
	"dropgames/gamemaster"
	"dropgames/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}

func run() error {
	gameName := flag.String("game", "connect4", fmt.Sprintf("Game to play, one of %v", gamemaster.Names()))
	levelName := flag.String("level", "medium", "Computer strength: human, easy, medium or hard")
	mode := flag.String("mode", "play", "play, levels (experiment) or pruning (experiment)")
	flag.Parse()

	cfg := config.LoadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return err
	}

	g, err := gamemaster.Lookup(*gameName)
	if err != nil {
		return err
	}

	switch *mode {
	case "play":
		level, err := agent.ParseLevel(*levelName)
		if err != nil {
			return err
		}
		log.Info().Msgf("playing %s at level %s", g.Name, level)
		return gamemaster.Play(g, level, cfg, os.Stdin, os.Stdout)
	case "levels":
		_, err := experiments.RunLevelExperiment(g, cfg)
		return err
	case "pruning":
		_, err := experiments.RunPruningExperiment(g, cfg)
		return err
	}
	return fmt.Errorf("unknown mode %q", *mode)
}
