package connect4

import (
	"fmt"
	"strings"
)

// Color is the content of a cell. None marks an empty cell.
type Color uint8

const (
	None Color = iota
	Red
	Yellow
)

// Switch flips Red and Yellow.
func (c Color) Switch() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return None
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	}
	return "None"
}

// Symbol is the single character used when rendering a board.
func (c Color) Symbol() string {
	switch c {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	}
	return "-"
}

// ParseColor accepts "Red"/"Yellow" in any case, or "R"/"Y".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "yellow", "y":
		return Yellow, nil
	}
	return None, fmt.Errorf("unknown color %q", s)
}
