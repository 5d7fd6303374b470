package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	playerA = "alice"
	playerB = "bob"
)

// newTestState builds a state for players A (First) and B (Second).
func newTestState(t *testing.T, stones map[Coordinate]Side, toMove Side, captures ...int) *State {
	t.Helper()
	p := Position{
		Players:  [2]string{playerA, playerB},
		ToMove:   playerA,
		Captures: map[string]int{},
	}
	if toMove == Second {
		p.ToMove = playerB
	}
	for c, side := range stones {
		player := playerA
		if side == Second {
			player = playerB
		}
		p.Stones = append(p.Stones, Placement{Coordinate: c, Player: player})
	}
	if len(captures) > 0 {
		p.Captures[playerA] = captures[0]
	}
	if len(captures) > 1 {
		p.Captures[playerB] = captures[1]
	}
	s, err := NewState(p)
	require.NoError(t, err, "Test position should be valid")
	return s
}

func row(side Side, y int, xs ...int) map[Coordinate]Side {
	out := map[Coordinate]Side{}
	for _, x := range xs {
		out[Coordinate{X: x, Y: y}] = side
	}
	return out
}

func merge(maps ...map[Coordinate]Side) map[Coordinate]Side {
	out := map[Coordinate]Side{}
	for _, m := range maps {
		for c, s := range m {
			out[c] = s
		}
	}
	return out
}

func mustPlay(t *testing.T, s *State, c Coordinate) *State {
	t.Helper()
	child, err := s.Play(c)
	require.NoError(t, err, "Move %s should be legal", c)
	return child
}
