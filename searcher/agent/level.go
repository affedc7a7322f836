package agent

import (
	"errors"
	"fmt"
	"strings"

	"dropgames/meta"
	"dropgames/searcher"
	"dropgames/utils"
)

var (
	ErrHumanLevel   = errors.New("human level does not search")
	ErrUnknownLevel = errors.New("unknown level")
)

// Level is the opponent strength offered to players.
type Level int

const (
	Human Level = iota
	Easy
	Medium
	Hard
)

var levelNames = []string{"human", "easy", "medium", "hard"}

func (l Level) String() string {
	if l < Human || l > Hard {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts a level name in any case or its number 1-4, the way the
// console menu lists them.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := utils.FindIndex(levelNames, s); i >= 0 {
		return Level(i), nil
	}
	if i := utils.FindIndex([]string{"1", "2", "3", "4"}, s); i >= 0 {
		return Level(i), nil
	}
	return Human, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Depths maps the searching levels to a depth.
type Depths struct {
	Easy   int
	Medium int
	Hard   int
}

// DefaultConnect4Depths and DefaultTootOttoDepths are used when the
// deployment does not configure its own.
var (
	DefaultConnect4Depths = Depths{Easy: meta.C4_DEPTH_EASY, Medium: meta.C4_DEPTH_MEDIUM, Hard: meta.C4_DEPTH_HARD}
	DefaultTootOttoDepths = Depths{Easy: meta.TOOT_DEPTH_EASY, Medium: meta.TOOT_DEPTH_MEDIUM, Hard: meta.TOOT_DEPTH_HARD}
)

// For returns the depth searched at level.
func (d Depths) For(level Level) (int, error) {
	switch level {
	case Human:
		return 0, ErrHumanLevel
	case Easy:
		return d.Easy, nil
	case Medium:
		return d.Medium, nil
	case Hard:
		return d.Hard, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
}

// Validate checks every depth is at least 1 and that depth grows with level.
func (d Depths) Validate() error {
	if d.Easy < 1 {
		return fmt.Errorf("easy depth %d: %w", d.Easy, searcher.ErrInvalidDepth)
	}
	if d.Medium < d.Easy || d.Hard < d.Medium {
		return fmt.Errorf("depths must not decrease with level: %+v", d)
	}
	return nil
}

// ForLevel builds the computer opponent for level. Human returns
// ErrHumanLevel.
func ForLevel(level Level, depths Depths, options ...searcher.Option) (Agent, error) {
	depth, err := depths.For(level)
	if err != nil {
		return nil, err
	}
	return NewSearchAgent(searcher.New(options...), depth), nil
}
