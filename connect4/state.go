package connect4

import (
	"fmt"
	"strconv"
	"strings"

	"dropgames/game"
)

// Move is the column a disc is dropped in.
type Move int

func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// ParseMove reads a column number such as "3".
func ParseMove(s string) (Move, error) {
	col, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", s, err)
	}
	return Move(col), nil
}

func (p Position) Player() string {
	return p.active.String()
}

func (p Position) Candidates() []game.Move {
	moves := make([]game.Move, 0, Cols)
	for _, col := range columnOrder {
		moves = append(moves, Move(col))
	}
	return moves
}

func (p Position) Play(m game.Move) (game.State, error) {
	col, ok := m.(Move)
	if !ok {
		return nil, game.Illegal("unexpected move type %T", m)
	}
	next := p
	if err := next.Drop(int(col)); err != nil {
		return nil, err
	}
	return next, nil
}

func (p Position) IsTerminal() bool {
	return p.terminal
}

func (p Position) Winner() string {
	if p.winner == None {
		return ""
	}
	return p.winner.String()
}

// Evaluate scores the position for the named color; unknown names score 0.
func (p Position) Evaluate(player string) int {
	c, err := ParseColor(player)
	if err != nil {
		return 0
	}
	return p.Score(c)
}

func (p Position) Capacity() int {
	return Rows * Cols
}
