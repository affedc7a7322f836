package toototto

import (
	"fmt"
	"strings"
)

// Letter is the content of a cell. Blank marks an empty cell.
type Letter uint8

const (
	Blank Letter = iota
	T
	O
)

// Letters is the order letters are tried in during search.
var Letters = [2]Letter{T, O}

func (l Letter) String() string {
	switch l {
	case T:
		return "T"
	case O:
		return "O"
	}
	return "-"
}

// index maps T and O to the piece count column.
func (l Letter) index() int {
	return int(l) - 1
}

// ParseLetter accepts "T" or "O" in any case.
func ParseLetter(s string) (Letter, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T":
		return T, nil
	case "O":
		return O, nil
	}
	return Blank, fmt.Errorf("unknown letter %q", s)
}

// Player is one of the two sides. TOOT moves first.
type Player uint8

const (
	TOOT Player = iota
	OTTO
)

// Target is the sequence the player needs along a line.
func (p Player) Target() [4]Letter {
	if p == TOOT {
		return [4]Letter{T, O, O, T}
	}
	return [4]Letter{O, T, T, O}
}

func (p Player) Switch() Player {
	if p == TOOT {
		return OTTO
	}
	return TOOT
}

func (p Player) String() string {
	if p == TOOT {
		return "TOOT"
	}
	return "OTTO"
}

// ParsePlayer accepts "TOOT" or "OTTO" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TOOT":
		return TOOT, nil
	case "OTTO":
		return OTTO, nil
	}
	return TOOT, fmt.Errorf("unknown player %q", s)
}
