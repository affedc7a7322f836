package searcher

import (
	"errors"
	"math"

	"dropgames/game"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
	ErrNoMoves      = errors.New("no legal moves")
)

// Bounds of the search window. Every real score lies strictly inside.
const (
	posInf = math.MaxInt
	negInf = math.MinInt
)

// MakeMove searches state to depth with a time seeded searcher and returns
// the move picked for the side to move.
func MakeMove(state game.State, depth int) (game.Move, error) {
	return New().MakeMove(state, depth)
}
