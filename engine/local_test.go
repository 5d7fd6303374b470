package engine

import (
	"context"
	"errors"
	"testing"

	"pente/game"
	"pente/searcher"
	"pente/searcher/agent"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type scriptedAgent struct {
	moves []game.Coordinate
	err   error
}

func (a *scriptedAgent) FindMove(ctx context.Context, state *game.State) (searcher.Result, error) {
	if a.err != nil {
		return searcher.Result{}, a.err
	}
	move := a.moves[0]
	a.moves = a.moves[1:]
	return searcher.Result{Move: move}, nil
}

func newState(t *testing.T, first, second []game.Coordinate, toMove string) *game.State {
	t.Helper()
	p := game.Position{Players: [2]string{"alice", "bob"}, ToMove: toMove}
	for _, c := range first {
		p.Stones = append(p.Stones, game.Placement{Coordinate: c, Player: "alice"})
	}
	for _, c := range second {
		p.Stones = append(p.Stones, game.Placement{Coordinate: c, Player: "bob"})
	}
	s, err := game.NewState(p)
	require.NoError(t, err)
	return s
}

func TestLocalEngine(t *testing.T) {
	t.Run("rejecting a wrong number of agents", func(t *testing.T) {
		s := newState(t, nil, nil, "alice")
		require.Panics(t, func() { LocalEngine(s, []agent.Agent{&scriptedAgent{}}) })
	})

	t.Run("finishing a won position", func(t *testing.T) {
		s := newState(t,
			[]game.Coordinate{{X: 9, Y: 9}, {X: 10, Y: 9}, {X: 11, Y: 9}, {X: 12, Y: 9}},
			[]game.Coordinate{{X: 9, Y: 10}, {X: 10, Y: 10}, {X: 11, Y: 10}},
			"alice")
		agents := []agent.Agent{
			agent.NewEvaluationAgent(searcher.NewAlphaBeta(1)),
			agent.NewEvaluationAgent(searcher.NewAlphaBeta(1)),
		}
		e := LocalEngine(s, agents)

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, "alice", gameMetric.StartingPlayer)
		require.Equal(t, "alice", gameMetric.Winner)
		require.Equal(t, game.FirstWins.String(), gameMetric.Outcome)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, "(8,9)", moveMetrics[0].Move)
		require.Equal(t, game.WinScore, moveMetrics[0].Value)
		require.Len(t, e.History(), 1)
	})

	t.Run("forcing a legal move after an invalid one", func(t *testing.T) {
		s := newState(t, []game.Coordinate{game.Center}, nil, "bob")
		bob := &scriptedAgent{moves: []game.Coordinate{game.Center}}
		alice := &scriptedAgent{moves: []game.Coordinate{{X: 0, Y: 0}}}
		e := LocalEngine(s, []agent.Agent{alice, bob}, WithMaxMoves(1))

		_, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Len(t, moveMetrics, 1)
		require.True(t, moveMetrics[0].Fallback, "Invalid move should be replaced")
		require.Equal(t, s.Moves()[0].String(), moveMetrics[0].Move)
		require.Equal(t, game.Second, e.State().At(s.Moves()[0]))
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		s := newState(t, nil, nil, "alice")
		alice := &scriptedAgent{moves: []game.Coordinate{{X: 9, Y: 9}, {X: 9, Y: 11}}}
		bob := &scriptedAgent{moves: []game.Coordinate{{X: 10, Y: 10}}}
		e := LocalEngine(s, []agent.Agent{alice, bob}, WithMaxMoves(3))

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, game.Ongoing.String(), gameMetric.Outcome)
		require.Empty(t, gameMetric.Winner)
		require.Equal(t, []string{"alice", "bob", "alice"},
			[]string{moveMetrics[0].Player, moveMetrics[1].Player, moveMetrics[2].Player})
		require.Equal(t, 3, e.State().StoneCount())
	})

	t.Run("aborting on agent errors", func(t *testing.T) {
		boom := errors.New("boom")
		s := newState(t, nil, nil, "alice")
		e := LocalEngine(s, []agent.Agent{&scriptedAgent{err: boom}, &scriptedAgent{}})

		_, _, err := e.Run(context.Background())

		require.ErrorIs(t, err, boom)
	})

	t.Run("stopping on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := newState(t, nil, nil, "alice")
		e := LocalEngine(s, []agent.Agent{&scriptedAgent{}, &scriptedAgent{}})

		_, _, err := e.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("self-play between searching agents", func(t *testing.T) {
		s := newState(t, nil, nil, "alice")
		agents := []agent.Agent{
			agent.NewTrainingAgent(searcher.NewAlphaBeta(1), 0.2, 3),
			agent.NewEvaluationAgent(searcher.NewAlphaBeta(1)),
		}
		e := LocalEngine(s, agents, WithMaxMoves(30))

		gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Len(t, e.History(), gameMetric.TotalMoves)
		require.Equal(t, game.Center.String(), moveMetrics[0].Move, "Empty board should open in the centre")
	})
}

func TestRandomOpening(t *testing.T) {
	s := newState(t, nil, nil, "alice")

	opened, err := RandomOpening(s, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	again, err := RandomOpening(s, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Equal(t, 3, opened.StoneCount())
	require.Equal(t, game.First, opened.At(game.Center), "Opening should start in the centre")
	require.Equal(t, opened.Stones(game.First), again.Stones(game.First), "Same seed should give the same opening")
	require.Equal(t, opened.Stones(game.Second), again.Stones(game.Second))
	require.Equal(t, game.Second, opened.ToMove())
}
