// Package connect4 is the Connect Four board: a 6x7 grid where Red and Yellow
// alternate dropping discs until one of them lines up four.
package connect4

import (
	"strconv"
	"strings"

	"dropgames/game"
)

const (
	Rows   = 6
	Cols   = 7
	Center = Cols / 2

	// CenterBonus is awarded per own disc in the center column.
	CenterBonus = 5
)

// columnOrder is the center-out order moves are tried in.
var columnOrder = [Cols]int{3, 2, 4, 1, 5, 0, 6}

var windows = game.Windows(Rows, Cols)

// Position is a Connect Four position. The zero value is not a valid game,
// use New.
type Position struct {
	grid     [Rows][Cols]Color
	heights  [Cols]int
	active   Color
	moves    int
	winner   Color
	terminal bool
}

// New returns an empty board with Red to move.
func New() Position {
	return Position{active: Red}
}

// Drop places the active color in col. On error the position is unchanged.
func (p *Position) Drop(col int) error {
	if p.terminal {
		return game.Illegal("game is over")
	}
	if col < 0 || col >= Cols {
		return game.Illegal("column %d out of range", col)
	}
	if p.heights[col] == Rows {
		return game.Illegal("column %d is full", col)
	}

	row := Rows - 1 - p.heights[col]
	p.grid[row][col] = p.active
	p.heights[col]++
	p.moves++

	// Only the mover can complete a line with this drop
	if _, won := p.CheckForWin(p.active); won {
		p.winner = p.active
		p.terminal = true
		return nil
	}
	if p.moves == Rows*Cols {
		p.terminal = true
		return nil
	}

	p.active = p.active.Switch()
	return nil
}

// CheckForWin returns the first line of four discs of color c in scan order.
func (p Position) CheckForWin(c Color) (game.Line, bool) {
	return game.FindLine(windows, p.at, func(_ int, cell Color) bool {
		return cell == c
	})
}

// Score is the heuristic value of the position for c.
func (p Position) Score(c Color) int {
	score := game.SumWindows(windows, func(_ int, at game.Coord) game.CellKind {
		switch cell := p.at(at); cell {
		case None:
			return game.EmptyKind(at.Row, p.heights[at.Col], Rows)
		case c:
			return game.Own
		default:
			return game.Opponent
		}
	})

	for row := 0; row < Rows; row++ {
		if p.grid[row][Center] == c {
			score += CenterBonus
		}
	}
	return score
}

// Columns is the static center-out move order.
func (p Position) Columns() []int {
	cols := columnOrder
	return cols[:]
}

func (p Position) at(c game.Coord) Color {
	return p.grid[c.Row][c.Col]
}

// At returns the disc at (row, col), None when empty.
func (p Position) At(row, col int) Color {
	return p.grid[row][col]
}

func (p Position) ColumnHeights() [Cols]int {
	return p.heights
}

func (p Position) ActiveColor() Color {
	return p.active
}

func (p Position) MovesPlayed() int {
	return p.moves
}

// WinnerColor returns the winning color, if any.
func (p Position) WinnerColor() (Color, bool) {
	return p.winner, p.winner != None
}

// String renders the board with '-' for empty cells and the column labels on
// the last line.
func (p Position) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.grid[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < Cols; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(col))
	}
	return sb.String()
}
