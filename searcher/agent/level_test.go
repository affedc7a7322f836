package agent

import (
	"testing"

	"dropgames/connect4"
	"dropgames/searcher"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"human":  Human,
		"Easy":   Easy,
		" HARD ": Hard,
		"3":      Medium,
		"1":      Human,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("expert")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "medium", Medium.String())
	require.Equal(t, "level(9)", Level(9).String())
}

func TestDepths(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, Depths{Easy: 1, Medium: 4, Hard: 7}, DefaultConnect4Depths)
		require.Equal(t, Depths{Easy: 1, Medium: 2, Hard: 4}, DefaultTootOttoDepths)
		require.NoError(t, DefaultConnect4Depths.Validate())
		require.NoError(t, DefaultTootOttoDepths.Validate())
	})

	t.Run("depth per level", func(t *testing.T) {
		d, err := DefaultConnect4Depths.For(Hard)
		require.NoError(t, err)
		require.Equal(t, 7, d)

		_, err = DefaultConnect4Depths.For(Human)
		require.ErrorIs(t, err, ErrHumanLevel)

		_, err = DefaultConnect4Depths.For(Level(7))
		require.ErrorIs(t, err, ErrUnknownLevel)
	})

	t.Run("validation", func(t *testing.T) {
		require.ErrorIs(t, Depths{Easy: 0, Medium: 1, Hard: 2}.Validate(), searcher.ErrInvalidDepth)
		require.Error(t, Depths{Easy: 2, Medium: 1, Hard: 3}.Validate())
		require.Error(t, Depths{Easy: 1, Medium: 3, Hard: 2}.Validate())
		require.NoError(t, Depths{Easy: 2, Medium: 2, Hard: 2}.Validate())
	})
}

func TestForLevel(t *testing.T) {
	t.Run("human does not search", func(t *testing.T) {
		_, err := ForLevel(Human, DefaultConnect4Depths)
		require.ErrorIs(t, err, ErrHumanLevel)
	})

	t.Run("every level takes a win in one", func(t *testing.T) {
		p := connect4.New()
		for _, col := range []int{3, 3, 4, 4, 5, 5} {
			require.NoError(t, p.Drop(col))
		}

		for level, depth := range map[Level]int{Easy: 1, Medium: 4} {
			a, err := ForLevel(level, DefaultConnect4Depths, searcher.WithSeed(1), searcher.WithMetrics())
			require.NoError(t, err)

			move, metric, err := a.FindMove(p)

			require.NoError(t, err)
			require.Contains(t, []connect4.Move{2, 6}, move, level.String())
			require.Equal(t, depth, metric.Depth)
		}
	})

	t.Run("errors pass through", func(t *testing.T) {
		p := connect4.New()
		for _, col := range []int{3, 3, 4, 4, 5, 5, 6} {
			require.NoError(t, p.Drop(col))
		}
		a, err := ForLevel(Easy, DefaultConnect4Depths)
		require.NoError(t, err)

		_, _, err = a.FindMove(p)
		require.ErrorIs(t, err, searcher.ErrGameOver)
	})
}
