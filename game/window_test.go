package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindows(t *testing.T) {
	t.Run("window counts", func(t *testing.T) {
		require.Len(t, Windows(6, 7), 69, "6x7 board should have 69 windows")
		require.Len(t, Windows(4, 6), 24, "4x6 board should have 24 windows")
		require.Empty(t, Windows(3, 3), "Boards smaller than a line have no windows")
	})

	t.Run("scan order", func(t *testing.T) {
		windows := Windows(6, 7)

		require.Equal(t, Line{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, windows[0], "Rows come first")
		require.Equal(t, Line{{5, 3}, {5, 4}, {5, 5}, {5, 6}}, windows[23], "Last row window")
		require.Equal(t, Line{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, windows[24], "Columns follow rows")
		require.Equal(t, Line{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, windows[45], "Diagonals follow columns")
		require.Equal(t, Line{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, windows[57], "Anti-diagonals come last")
		require.Equal(t, Line{{2, 6}, {3, 5}, {4, 4}, {5, 3}}, windows[68])
	})

	t.Run("every window stays on the board", func(t *testing.T) {
		for _, w := range Windows(4, 6) {
			for _, c := range w {
				require.True(t, c.Row >= 0 && c.Row < 4 && c.Col >= 0 && c.Col < 6, "%v out of range in %v", c, w)
			}
		}
	})
}

func TestFindLine(t *testing.T) {
	grid := [4][4]int{
		{0, 0, 0, 2},
		{0, 0, 2, 0},
		{1, 2, 1, 1},
		{2, 1, 1, 1},
	}
	cell := func(c Coord) int { return grid[c.Row][c.Col] }
	windows := Windows(4, 4)

	t.Run("finds the first matching window", func(t *testing.T) {
		line, ok := FindLine(windows, cell, func(_ int, v int) bool { return v == 2 })

		require.True(t, ok)
		require.Equal(t, Line{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, line)
	})

	t.Run("matches a target sequence by index", func(t *testing.T) {
		target := [4]int{2, 1, 1, 1}
		line, ok := FindLine(windows, cell, func(i int, v int) bool { return v == target[i] })

		require.True(t, ok)
		require.Equal(t, Line{{3, 0}, {3, 1}, {3, 2}, {3, 3}}, line)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := FindLine(windows, cell, func(_ int, v int) bool { return v == 3 })

		require.False(t, ok)
	})
}
