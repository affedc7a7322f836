package experiments

import (
	"fmt"

	"dropgames/config"
	"dropgames/engine"
	"dropgames/experiments/metrics"
	"dropgames/gamemaster"
	"dropgames/searcher"
	"dropgames/searcher/agent"

	"github.com/rs/zerolog/log"
)

// RunLevelExperiment pits every searching level against every other level,
// each side of every pair moving first in turn. It returns the directory the
// CSV files were written to.
func RunLevelExperiment(g gamemaster.Game, cfg *config.Config) (string, error) {
	depths := g.Depths(cfg)
	configs := []metrics.AgentConfig{}
	for i, level := range []agent.Level{agent.Easy, agent.Medium, agent.Hard} {
		depth, err := depths.For(level)
		if err != nil {
			return "", err
		}
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Level: level.String(), Depth: depth, Pruning: cfg.SearchPruning})
	}

	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	return runExperiment(g, cfg, "levels", configs, matchUps)
}

// RunPruningExperiment plays the hard level with and without alpha-beta
// pruning. Both search the same tree, so the interesting columns are nodes
// and duration.
func RunPruningExperiment(g gamemaster.Game, cfg *config.Config) (string, error) {
	depth, err := g.Depths(cfg).For(agent.Hard)
	if err != nil {
		return "", err
	}
	configs := []metrics.AgentConfig{
		{ID: 1, Level: agent.Hard.String(), Depth: depth, Pruning: false},
		{ID: 2, Level: agent.Hard.String(), Depth: depth, Pruning: true},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}

	return runExperiment(g, cfg, "pruning", configs, matchUps)
}

func runExperiment(g gamemaster.Game, cfg *config.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on %s...", name, g.Name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < cfg.ExperimentGames; i++ {
			// Alternate which agent moves first
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := runGame(g, cfg, first, second)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.ExperimentDir, g.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %s run %s in %s", name, writer.RunID(), writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game, config1 taking the side that moves first.
func runGame(g gamemaster.Game, cfg *config.Config, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	state := g.New()
	sides := gamemaster.Players(state)
	if len(sides) != 2 {
		return "", metrics.GameMetric{}, nil, fmt.Errorf("%s: want two players, got %v", g.Name, sides)
	}
	agents := map[string]agent.Agent{
		sides[0]: agent.NewSearchAgent(createSearcher(cfg, config1), config1.Depth),
		sides[1]: agent.NewSearchAgent(createSearcher(cfg, config2), config2.Depth),
	}

	return engine.LocalEngine(state, agents).Run()
}

func createSearcher(cfg *config.Config, ac metrics.AgentConfig) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithPruning(ac.Pruning),
		searcher.WithMetrics(),
	}
	if cfg.SearchSeed != 0 {
		options = append(options, searcher.WithSeed(cfg.SearchSeed+uint64(ac.ID)))
	}
	return searcher.New(options...)
}
