// Package gamemaster knows the available games and runs console sessions
// between a human and the computer.
package gamemaster

import (
	"fmt"
	"io"
	"strings"

	"dropgames/config"
	"dropgames/connect4"
	"dropgames/engine"
	"dropgames/game"
	"dropgames/player"
	"dropgames/searcher"
	"dropgames/searcher/agent"
	"dropgames/toototto"
	"dropgames/utils"
)

// Game ties a board implementation to what a session needs to play it.
type Game struct {
	Name   string
	New    func() game.State
	Parse  player.ParseFunc
	Prompt string
	Human  string // Side taken by the human against the computer
	Depths func(cfg *config.Config) agent.Depths
}

var games = []Game{
	{
		Name: "connect4",
		New:  func() game.State { return connect4.New() },
		Parse: func(s string) (game.Move, error) {
			m, err := connect4.ParseMove(s)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
		Prompt: fmt.Sprintf("a column (0-%d)", connect4.Cols-1),
		Human:  connect4.Red.String(),
		Depths: func(cfg *config.Config) agent.Depths { return cfg.Connect4Depths },
	},
	{
		Name: "toototto",
		New:  func() game.State { return toototto.New() },
		Parse: func(s string) (game.Move, error) {
			m, err := toototto.ParseMove(s)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
		Prompt: fmt.Sprintf("a letter and a column (T or O, 0-%d)", toototto.Cols-1),
		Human:  toototto.TOOT.String(),
		Depths: func(cfg *config.Config) agent.Depths { return cfg.TootOttoDepths },
	},
}

var aliases = map[string]string{
	"c4":   "connect4",
	"toot": "toototto",
	"to":   "toototto",
}

func Names() []string {
	names := make([]string, len(games))
	for i, g := range games {
		names[i] = g.Name
	}
	return names
}

// Lookup finds a game by name or short alias, ignoring case.
func Lookup(name string) (Game, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if full, ok := aliases[name]; ok {
		name = full
	}
	i := utils.FindIndex(Names(), name)
	if i < 0 {
		return Game{}, fmt.Errorf("unknown game %q, want one of %v", name, Names())
	}
	return games[i], nil
}

// SearchOptions turns the search settings of cfg into searcher options.
func SearchOptions(cfg *config.Config) []searcher.Option {
	options := []searcher.Option{searcher.WithPruning(cfg.SearchPruning)}
	if cfg.SearchSeed != 0 {
		options = append(options, searcher.WithSeed(cfg.SearchSeed))
	}
	return options
}

// Play runs one console game of g at level. The human takes g.Human and the
// computer the other side; at the Human level both sides are typed in.
func Play(g Game, level agent.Level, cfg *config.Config, in io.Reader, out io.Writer) error {
	state := g.New()
	human := player.NewConsole(in, out, g.Parse, g.Prompt)

	var computer agent.Agent = human
	if level != agent.Human {
		a, err := agent.ForLevel(level, g.Depths(cfg), SearchOptions(cfg)...)
		if err != nil {
			return err
		}
		computer = a
	}

	agents := map[string]agent.Agent{}
	for _, p := range Players(state) {
		if p == g.Human {
			agents[p] = human
		} else {
			agents[p] = computer
		}
	}

	fmt.Fprintf(out, "%s\n\n", state)
	e := engine.LocalEngine(state, agents, engine.WithOnMove(func(u engine.Update) {
		fmt.Fprintf(out, "%s played %s\n%s\n\n", u.Player, u.Move, u.State)
	}))

	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	if winner == "" {
		fmt.Fprintln(out, "Game drawn")
	} else {
		fmt.Fprintf(out, "%s player won!\n", winner)
	}
	return nil
}

// Players lists both sides, starting with the one to move.
func Players(state game.State) []string {
	first := state.Player()
	for _, move := range state.Candidates() {
		if next, err := state.Play(move); err == nil && !next.IsTerminal() {
			return []string{first, next.Player()}
		}
	}
	return []string{first}
}
