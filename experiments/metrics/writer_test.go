package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dropgames/searcher"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "connect4")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "connect4", w.RunID().String()), w.Dir())

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Level: "easy", Depth: 1, Pruning: true}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 1,
		GameMetric: GameMetric{StartingPlayer: "Red", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 7},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: "Red", Move: "3", Metric: searcher.Metric{Depth: 1, Nodes: 7, Leaves: 7, Ties: 1}},
	}}))

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		return string(b)
	}
	run := w.RunID().String()

	require.Equal(t, "run,id,level,depth,pruning\n"+run+",1,easy,1,true\n", read("agent_configs.csv"))
	require.Equal(t,
		"run,id,agent1,agent2,starting_player,winner,start_time,end_time,duration,total_moves\n"+
			run+",1,1,1,Red,,2024-05-01T12:00:00Z,2024-05-01T12:00:01Z,1s,7\n",
		read("game_records.csv"))
	require.True(t, strings.HasSuffix(read("move_records.csv"), run+",1,1,Red,3,1,false,0s,7,7,0,1\n"))
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("TOOT")
	c.AddMove("TOOT", "T 2", searcher.Metric{Nodes: 3})
	c.AddMove("OTTO", "O 2", searcher.Metric{})

	game, moves := c.Complete("OTTO")

	require.Equal(t, "TOOT", game.StartingPlayer)
	require.Equal(t, "OTTO", game.Winner)
	require.Equal(t, 2, game.TotalMoves)
	require.False(t, game.EndTime.Before(game.StartTime))
	require.Equal(t, []int{1, 2}, []int{moves[0].Step, moves[1].Step})
	require.Equal(t, int64(3), moves[0].Nodes)

	c.Start("OTTO")
	_, moves = c.Complete("")
	require.Empty(t, moves, "Start should reset the moves")
}
