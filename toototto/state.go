package toototto

import (
	"fmt"
	"strconv"
	"strings"

	"dropgames/game"
)

// Move is a letter dropped in a column.
type Move struct {
	Letter Letter
	Col    int
}

func (m Move) String() string {
	return m.Letter.String() + " " + strconv.Itoa(m.Col)
}

// ParseMove reads "<letter> <column>", for example "T 3" or "o 0".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("invalid move %q: want <letter> <column>", s)
	}
	letter, err := ParseLetter(fields[0])
	if err != nil {
		return Move{}, err
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid column %q: %w", fields[1], err)
	}
	return Move{Letter: letter, Col: col}, nil
}

func (p Position) Player() string {
	return p.active.String()
}

// Candidates tries every column with T, then every column with O.
func (p Position) Candidates() []game.Move {
	moves := make([]game.Move, 0, len(Letters)*Cols)
	for _, letter := range Letters {
		for _, col := range columnOrder {
			moves = append(moves, Move{Letter: letter, Col: col})
		}
	}
	return moves
}

func (p Position) Play(m game.Move) (game.State, error) {
	move, ok := m.(Move)
	if !ok {
		return nil, game.Illegal("unexpected move type %T", m)
	}
	next := p
	if err := next.Drop(move.Letter, move.Col); err != nil {
		return nil, err
	}
	return next, nil
}

func (p Position) IsTerminal() bool {
	return p.terminal
}

func (p Position) Winner() string {
	if !p.hasWin {
		return ""
	}
	return p.winner.String()
}

// Evaluate scores the position for the named player; unknown names score 0.
func (p Position) Evaluate(player string) int {
	pl, err := ParsePlayer(player)
	if err != nil {
		return 0
	}
	return p.Score(pl)
}

func (p Position) Capacity() int {
	return Rows * Cols
}
