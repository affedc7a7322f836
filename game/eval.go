package game

import "math"

// Window pattern values, from the perspective of the scoring player.
const (
	LineOfFour            = 100_000
	LineOfThree           = 10
	LineOfTwo             = 1
	OpponentThreePlayable = -10_000 // Opponent completes on the next drop
	OpponentThree         = -20
	OpponentTwo           = -3
)

// CellKind classifies one cell of a window for the scoring player.
type CellKind int

const (
	Own CellKind = iota
	Opponent
	EmptyPlayable // The next drop in its column lands here
	EmptyBlocked  // Empty with at least one empty cell below
)

// WindowCounts tallies the cells of one window.
type WindowCounts struct {
	Own           int
	Opponent      int
	EmptyPlayable int
	EmptyBlocked  int
}

// Classify tallies a window given a per-cell classifier.
func Classify(w Line, kind func(i int, at Coord) CellKind) WindowCounts {
	var wc WindowCounts
	for i, at := range w {
		switch kind(i, at) {
		case Own:
			wc.Own++
		case Opponent:
			wc.Opponent++
		case EmptyPlayable:
			wc.EmptyPlayable++
		case EmptyBlocked:
			wc.EmptyBlocked++
		}
	}
	return wc
}

// Score maps the window tally to its contribution. Mixed windows are dead.
func (wc WindowCounts) Score() int {
	if wc.Own > 0 && wc.Opponent > 0 {
		return 0
	}

	switch {
	case wc.Own == 4:
		return LineOfFour
	case wc.Own == 3:
		return LineOfThree
	case wc.Own == 2:
		return LineOfTwo
	case wc.Opponent == 3 && wc.EmptyPlayable == 1:
		return OpponentThreePlayable
	case wc.Opponent == 3 && wc.EmptyBlocked == 1:
		return OpponentThree
	case wc.Opponent == 2:
		return OpponentTwo
	}
	return 0
}

// EmptyKind tells whether an empty cell at row is the next landing slot of a
// column holding height pieces on a board with rows rows.
func EmptyKind(row, height, rows int) CellKind {
	if row == rows-1-height {
		return EmptyPlayable
	}
	return EmptyBlocked
}

// SumWindows adds the scores of every window.
func SumWindows(windows []Line, kind func(i int, at Coord) CellKind) int {
	score := 0
	for _, w := range windows {
		score += Classify(w, kind).Score()
	}
	return score
}

// TerminalScore values a finished game for the maximizing player. Wins found
// with more depth left score higher, losses found later score higher, so the
// search prefers quick wins and slow losses. capacity+1 keeps every value
// inside the int32 range.
func TerminalScore(winner, maximizer string, depth, capacity int) int {
	k := capacity + 1
	switch winner {
	case "":
		return 0
	case maximizer:
		return math.MaxInt32 - k + depth
	default:
		return math.MinInt32 + k - depth
	}
}
