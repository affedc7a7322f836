package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"dropgames/game"
	"dropgames/searcher"
)

var ErrNoInput = errors.New("input closed")

// ParseFunc turns a line typed by the player into a move.
type ParseFunc func(string) (game.Move, error)

// Console is a human player typing moves on a terminal. Unparseable input and
// illegal moves are reported and asked for again.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	parse  ParseFunc
	prompt string
}

// NewConsole creates a console player. prompt is shown before each read, for
// example "column (0-6)".
func NewConsole(in io.Reader, out io.Writer, parse ParseFunc, prompt string) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		parse:  parse,
		prompt: prompt,
	}
}

func (c *Console) FindMove(state game.State) (game.Move, searcher.Metric, error) {
	for {
		fmt.Fprintf(c.out, "%s, enter %s: ", state.Player(), c.prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return nil, searcher.Metric{}, err
			}
			return nil, searcher.Metric{}, ErrNoInput
		}

		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		move, err := c.parse(line)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid input: %v\n", err)
			continue
		}
		if _, err := state.Play(move); err != nil {
			fmt.Fprintf(c.out, "Invalid move: %v\n", err)
			continue
		}
		return move, searcher.Metric{}, nil
	}
}
