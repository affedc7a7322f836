package player

import (
	"bytes"
	"strings"
	"testing"

	"dropgames/connect4"
	"dropgames/game"
	"dropgames/toototto"

	"github.com/stretchr/testify/require"
)

func parseConnect4(s string) (game.Move, error) {
	m, err := connect4.ParseMove(s)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func TestConsole(t *testing.T) {
	t.Run("reads a move", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("4\n"), &out, parseConnect4, "a column")

		move, _, err := c.FindMove(connect4.New())

		require.NoError(t, err)
		require.Equal(t, connect4.Move(4), move)
		require.Equal(t, "Red, enter a column: ", out.String())
	})

	t.Run("asks again after bad input", func(t *testing.T) {
		p := connect4.New()
		for i := 0; i < connect4.Rows; i++ {
			require.NoError(t, p.Drop(0))
		}
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("x\n\n0\n7\n2\n"), &out, parseConnect4, "a column")

		move, _, err := c.FindMove(p)

		require.NoError(t, err)
		require.Equal(t, connect4.Move(2), move)
		require.Contains(t, out.String(), "Invalid input")
		require.Contains(t, out.String(), "column 0 is full")
		require.Contains(t, out.String(), "column 7 out of range")
	})

	t.Run("letters and columns", func(t *testing.T) {
		parse := func(s string) (game.Move, error) {
			m, err := toototto.ParseMove(s)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
		c := NewConsole(strings.NewReader("o 5\n"), &bytes.Buffer{}, parse, "a letter and a column")

		move, _, err := c.FindMove(toototto.New())

		require.NoError(t, err)
		require.Equal(t, toototto.Move{Letter: toototto.O, Col: 5}, move)
	})

	t.Run("input runs out", func(t *testing.T) {
		c := NewConsole(strings.NewReader("x\n"), &bytes.Buffer{}, parseConnect4, "a column")

		_, _, err := c.FindMove(connect4.New())

		require.ErrorIs(t, err, ErrNoInput)
	})
}
