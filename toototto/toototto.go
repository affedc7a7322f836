// Package toototto is the TOOT-and-OTTO board: a 4x6 grid where both players
// drop T and O pieces. TOOT wins by spelling T-O-O-T along a line, OTTO by
// spelling O-T-T-O.
package toototto

import (
	"strconv"
	"strings"

	"dropgames/game"
)

const (
	Rows = 4
	Cols = 6

	// PiecesPerLetter is each player's starting stock of each letter.
	PiecesPerLetter = 6
)

var columnOrder = [Cols]int{2, 3, 1, 4, 0, 5}

var windows = game.Windows(Rows, Cols)

// Position is a TOOT-and-OTTO position. Use New to get a playable one.
type Position struct {
	grid     [Rows][Cols]Letter
	heights  [Cols]int
	counts   [2][2]int // [player][letter index] pieces left
	active   Player
	moves    int
	winner   Player
	hasWin   bool
	terminal bool
}

// New returns an empty board with TOOT to move and six of each letter per
// player.
func New() Position {
	p := Position{active: TOOT}
	for i := range p.counts {
		for j := range p.counts[i] {
			p.counts[i][j] = PiecesPerLetter
		}
	}
	return p
}

// Drop places letter in col for the active player. On error the position is
// unchanged.
func (p *Position) Drop(letter Letter, col int) error {
	if p.terminal {
		return game.Illegal("game is over")
	}
	if letter != T && letter != O {
		return game.Illegal("unknown letter %d", letter)
	}
	if col < 0 || col >= Cols {
		return game.Illegal("column %d out of range", col)
	}
	if p.heights[col] == Rows {
		return game.Illegal("column %d is full", col)
	}
	if p.counts[p.active][letter.index()] == 0 {
		return game.Illegal("%s has no %s pieces left", p.active, letter)
	}

	row := Rows - 1 - p.heights[col]
	p.grid[row][col] = letter
	p.heights[col]++
	p.counts[p.active][letter.index()]--
	p.moves++

	// Either target can be spelled by either player's drop
	_, tootWon := p.CheckForWin(TOOT)
	_, ottoWon := p.CheckForWin(OTTO)
	switch {
	case tootWon && ottoWon:
		p.terminal = true
	case tootWon:
		p.winner, p.hasWin, p.terminal = TOOT, true, true
	case ottoWon:
		p.winner, p.hasWin, p.terminal = OTTO, true, true
	case p.moves == Rows*Cols:
		p.terminal = true
	}

	if !p.terminal {
		p.active = p.active.Switch()
	}
	return nil
}

// CheckForWin returns the first line spelling player's target in scan order.
func (p Position) CheckForWin(player Player) (game.Line, bool) {
	target := player.Target()
	return game.FindLine(windows, p.at, func(i int, cell Letter) bool {
		return cell == target[i]
	})
}

// Score is the heuristic value of the position for player. A cell is "own"
// when it holds the target letter for its place in the window.
func (p Position) Score(player Player) int {
	target := player.Target()
	return game.SumWindows(windows, func(i int, at game.Coord) game.CellKind {
		switch cell := p.at(at); cell {
		case Blank:
			return game.EmptyKind(at.Row, p.heights[at.Col], Rows)
		case target[i]:
			return game.Own
		default:
			return game.Opponent
		}
	})
}

// Columns is the static center-out move order.
func (p Position) Columns() []int {
	cols := columnOrder
	return cols[:]
}

func (p Position) at(c game.Coord) Letter {
	return p.grid[c.Row][c.Col]
}

// At returns the letter at (row, col), Blank when empty.
func (p Position) At(row, col int) Letter {
	return p.grid[row][col]
}

func (p Position) ColumnHeights() [Cols]int {
	return p.heights
}

func (p Position) ActivePlayer() Player {
	return p.active
}

func (p Position) MovesPlayed() int {
	return p.moves
}

// PieceCount is how many pieces of letter player has left.
func (p Position) PieceCount(player Player, letter Letter) int {
	if letter != T && letter != O {
		return 0
	}
	return p.counts[player][letter.index()]
}

// PieceCounts is the whole inventory, indexed [player][T=0, O=1].
func (p Position) PieceCounts() [2][2]int {
	return p.counts
}

// WinnerPlayer returns the winner, if any. A simultaneous TOOT and OTTO is
// a draw and has no winner.
func (p Position) WinnerPlayer() (Player, bool) {
	return p.winner, p.hasWin
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
			sb.WriteString(p.grid[row][col].String())
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
