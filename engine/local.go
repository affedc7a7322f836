package engine

import (
	"fmt"

	"dropgames/experiments/metrics"
	"dropgames/game"
	"dropgames/meta"
	"dropgames/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

// WithOnMove registers a callback run after every move, e.g. to print the
// board.
func WithOnMove(fn func(Update)) Option {
	return func(e *localEngine) {
		e.onMove = fn
	}
}

// WithMaxTurns overrides meta.MAX_TURNS.
func WithMaxTurns(n int) Option {
	return func(e *localEngine) {
		e.maxTurns = n
	}
}

type localEngine struct {
	state    game.State
	agents   map[string]agent.Agent // Keyed by State.Player()
	onMove   func(Update)
	maxTurns int
	metrics  metrics.Collector
}

// LocalEngine plays state out in process with one agent per player name.
func LocalEngine(state game.State, agents map[string]agent.Agent, options ...Option) Engine {
	e := &localEngine{
		state:    state,
		agents:   agents,
		onMove:   func(Update) {},
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Info().Msgf("player %s is starting", e.state.Player())
	e.metrics.Start(e.state.Player())

	for turn := 1; !e.state.IsTerminal() && turn <= e.maxTurns; turn++ {
		player := e.state.Player()
		a, ok := e.agents[player]
		if !ok {
			return "", metrics.GameMetric{}, nil, fmt.Errorf("%w %s", ErrNoAgent, player)
		}

		move, metric, err := a.FindMove(e.state)
		if err != nil {
			return "", metrics.GameMetric{}, nil, fmt.Errorf("player %s failed to move: %w", player, err)
		}
		next, err := e.state.Play(move)
		if err != nil {
			return "", metrics.GameMetric{}, nil, fmt.Errorf("player %s played %s: %w", player, move, err)
		}

		log.Debug().Msgf("turn %d: %s plays %s", turn, player, move)
		e.metrics.AddMove(player, move.String(), metric)
		e.state = next
		e.onMove(Update{Step: turn, Player: player, Move: move, State: next})
	}

	winner := e.state.Winner()
	if e.state.IsTerminal() {
		log.Info().Msgf("game over, winner: %q", winner)
	} else {
		log.Warn().Msgf("stopped after %d turns without a result", e.maxTurns)
	}

	gameMetric, moveMetrics := e.metrics.Complete(winner)
	return winner, gameMetric, moveMetrics, nil
}
