package agent

import (
	"dropgames/game"
	"dropgames/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
	depth    int
}

// NewSearchAgent returns an agent that plays the minimax move at depth.
func NewSearchAgent(s *searcher.Searcher, depth int) Agent {
	return searchAgent{searcher: s, depth: depth}
}

func (a searchAgent) FindMove(state game.State) (game.Move, searcher.Metric, error) {
	result, err := a.searcher.Search(state, a.depth)
	if err != nil {
		return nil, searcher.Metric{}, err
	}
	return result.Move, result.Metric, nil
}
