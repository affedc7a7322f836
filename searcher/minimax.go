package searcher

import (
	"time"

	"dropgames/game"
	"dropgames/utils"

	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher is a depth limited minimax search. The side to move at the root is
// the maximizer. Moves of equal value at the root are broken uniformly at
// random. A Searcher is not safe for concurrent use.
type Searcher struct {
	rng     *rand.Rand
	pruning bool
	metrics Collector
}

// Result is the outcome of one search.
type Result struct {
	Move   game.Move
	Value  int
	Ties   []game.Move // Every root move scoring Value, in candidate order
	Metric Metric
}

// WithSeed makes tie-breaking reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithPruning toggles alpha-beta pruning. It is on by default.
func WithPruning(enabled bool) Option {
	return func(s *Searcher) {
		s.pruning = enabled
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		pruning: true,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// MakeMove returns the best move for the side to move in state.
func (s *Searcher) MakeMove(state game.State, depth int) (game.Move, error) {
	result, err := s.Search(state, depth)
	if err != nil {
		return nil, err
	}
	return result.Move, nil
}

// Search runs minimax to depth plies below the root and picks one of the
// best moves at random.
func (s *Searcher) Search(state game.State, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, ErrInvalidDepth
	}
	if state.IsTerminal() {
		return Result{}, ErrGameOver
	}

	maximizer := state.Player()
	s.metrics.Start(depth, s.pruning)

	best := negInf
	var ties []game.Move
	for _, move := range state.Candidates() {
		child, err := state.Play(move)
		if err != nil { // Illegal here, skip
			continue
		}

		// A child is cut off only when it is strictly worse than best, so
		// every child scoring >= best comes back exact.
		alpha := negInf
		if s.pruning {
			alpha = best
		}
		value := s.minimax(child, depth-1, false, maximizer, alpha, posInf)

		switch {
		case value > best:
			best = value
			ties = append(ties[:0], move)
		case value == best:
			ties = append(ties, move)
		}
	}

	if len(ties) == 0 {
		s.metrics.Complete()
		return Result{}, ErrNoMoves
	}

	s.metrics.SetTies(len(ties))
	return Result{
		Move:   utils.Choose(s.rng, ties),
		Value:  best,
		Ties:   ties,
		Metric: s.metrics.Complete(),
	}, nil
}

// minimax returns the value of state for maximizer. With pruning on, a
// subtree is abandoned only once alpha > beta; ties never cause a cutoff.
func (s *Searcher) minimax(state game.State, depth int, maximizing bool, maximizer string, alpha, beta int) int {
	s.metrics.AddNode()

	if state.IsTerminal() {
		s.metrics.AddLeaf()
		return game.TerminalScore(state.Winner(), maximizer, depth, state.Capacity())
	}
	if depth == 0 {
		s.metrics.AddLeaf()
		return state.Evaluate(maximizer)
	}

	if maximizing {
		value := negInf
		for _, move := range state.Candidates() {
			child, err := state.Play(move)
			if err != nil {
				continue
			}
			value = max(value, s.minimax(child, depth-1, false, maximizer, alpha, beta))
			if s.pruning {
				alpha = max(alpha, value)
				if alpha > beta {
					s.metrics.AddCutoff()
					break
				}
			}
		}
		return value
	}

	value := posInf
	for _, move := range state.Candidates() {
		child, err := state.Play(move)
		if err != nil {
			continue
		}
		value = min(value, s.minimax(child, depth-1, true, maximizer, alpha, beta))
		if s.pruning {
			beta = min(beta, value)
			if alpha > beta {
				s.metrics.AddCutoff()
				break
			}
		}
	}
	return value
}
