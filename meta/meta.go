// meta/meta.go
package meta

// MAX_TURNS caps a local game. Both boards fill up well before it.
const MAX_TURNS = 64

// Connect Four search depth per strength level.
const (
	C4_DEPTH_EASY   = 1
	C4_DEPTH_MEDIUM = 4
	C4_DEPTH_HARD   = 7
)

// TOOT-and-OTTO branches twice as wide, so it searches shallower.
const (
	TOOT_DEPTH_EASY   = 1
	TOOT_DEPTH_MEDIUM = 2
	TOOT_DEPTH_HARD   = 4
)

// EXPERIMENT_GAMES is the default number of games per match-up.
const EXPERIMENT_GAMES = 10
