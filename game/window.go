package game

import "fmt"

// LineLength is the number of cells in a winning line.
const LineLength = 4

// Coord is a board cell. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Line is a window of four collinear cells.
type Line [LineLength]Coord

// Direction is a unit step along a line.
type Direction struct {
	DRow int
	DCol int
}

var (
	Horizontal = Direction{DRow: 0, DCol: 1}
	Vertical   = Direction{DRow: 1, DCol: 0}
	Diagonal   = Direction{DRow: 1, DCol: 1}  // +1,+1
	AntiDiag   = Direction{DRow: 1, DCol: -1} // +1,-1
)

// Windows lists every length-4 window of a rows x cols grid in scan order:
// rows top to bottom, then columns left to right, then +1,+1 diagonals, then
// +1,-1 diagonals. Within a direction the start row varies slowest.
func Windows(rows, cols int) []Line {
	var lines []Line

	for r := 0; r < rows; r++ {
		for c := 0; c+LineLength <= cols; c++ {
			lines = append(lines, lineFrom(Coord{r, c}, Horizontal))
		}
	}

	for c := 0; c < cols; c++ {
		for r := 0; r+LineLength <= rows; r++ {
			lines = append(lines, lineFrom(Coord{r, c}, Vertical))
		}
	}

	for r := 0; r+LineLength <= rows; r++ {
		for c := 0; c+LineLength <= cols; c++ {
			lines = append(lines, lineFrom(Coord{r, c}, Diagonal))
		}
	}

	for r := 0; r+LineLength <= rows; r++ {
		for c := LineLength - 1; c < cols; c++ {
			lines = append(lines, lineFrom(Coord{r, c}, AntiDiag))
		}
	}

	return lines
}

func lineFrom(start Coord, d Direction) Line {
	var l Line
	for i := range l {
		l[i] = Coord{Row: start.Row + i*d.DRow, Col: start.Col + i*d.DCol}
	}
	return l
}

// FindLine returns the first window, in the order given, whose cells all
// satisfy match. match receives the cell value and its index in the window so
// that pattern games can compare against a target sequence.
func FindLine[C any](windows []Line, cell func(Coord) C, match func(i int, c C) bool) (Line, bool) {
	for _, w := range windows {
		if matchesAll(w, cell, match) {
			return w, true
		}
	}
	return Line{}, false
}

func matchesAll[C any](w Line, cell func(Coord) C, match func(i int, c C) bool) bool {
	for i, at := range w {
		if !match(i, cell(at)) {
			return false
		}
	}
	return true
}
