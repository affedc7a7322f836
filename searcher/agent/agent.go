package agent

import (
	"dropgames/game"
	"dropgames/searcher"
)

type Agent interface {
	// FindMove returns a move for the side to move in state and the search
	// metrics (zero when not collected)
	FindMove(state game.State) (game.Move, searcher.Metric, error)
}
