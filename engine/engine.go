package engine

import (
	"errors"

	"dropgames/experiments/metrics"
	"dropgames/game"
)

var ErrNoAgent = errors.New("no agent for player")

type Engine interface {
	// Run plays a game until it is over or the turn cap is reached. The
	// winner is empty on a draw or an unfinished game.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Update is reported after every move.
type Update struct {
	Step   int
	Player string
	Move   game.Move
	State  game.State
}
