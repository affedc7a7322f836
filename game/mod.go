package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the only error the board models report. Callers re-prompt
// a human or skip the candidate during search.
var ErrIllegalMove = errors.New("illegal move")

// Move is a single drop. Connect Four moves are columns, TOOT-and-OTTO moves
// are (letter, column) pairs.
type Move interface {
	fmt.Stringer
}

// State is a position as seen by the searcher and the engine. Implementations
// are value types: Play never mutates the receiver.
type State interface {
	// Player is the side to move.
	Player() string
	// Candidates lists every move to try in search order. Some may be illegal.
	Candidates() []Move
	// Play returns a copy of the state with the move applied.
	Play(Move) (State, error)
	IsTerminal() bool
	// Winner is "" while the game runs and after a draw.
	Winner() string
	// Evaluate scores a non-terminal position for player.
	Evaluate(player string) int
	// Capacity is the number of cells on the board.
	Capacity() int
}

// Illegal wraps ErrIllegalMove with a reason.
func Illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}
