package metrics

import (
	"time"

	"dropgames/searcher"
)

// AgentConfig describes one computer player taking part in an experiment.
type AgentConfig struct {
	ID      int
	Level   string
	Depth   int
	Pruning bool
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	searcher.Metric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records one game as it is played.
type Collector interface {
	Start(startingPlayer string)
	AddMove(player, move string, metric searcher.Metric)
	Complete(winner string) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer string) {
	m.game = GameMetric{
		StartingPlayer: startingPlayer,
		StartTime:      time.Now(),
	}
	m.moves = nil
}

func (m *collector) AddMove(player, move string, metric searcher.Metric) {
	m.moves = append(m.moves, MoveMetric{
		Step:   len(m.moves) + 1,
		Player: player,
		Move:   move,
		Metric: metric,
	})
}

func (m *collector) Complete(winner string) (GameMetric, []MoveMetric) {
	m.game.Winner = winner
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.TotalMoves = len(m.moves)
	return m.game, m.moves
}
