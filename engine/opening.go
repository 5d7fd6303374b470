package engine

import (
	"fmt"

	"pente/game"

	"golang.org/x/exp/rand"
)

// RandomOpening plays plies random moves from state: the centre on an
// empty board, then uniformly random frontier cells.
func RandomOpening(state *game.State, plies int, rng *rand.Rand) (*game.State, error) {
	for i := 0; i < plies; i++ {
		moves := state.Moves()
		var move game.Coordinate
		switch {
		case len(moves) > 0:
			move = moves[rng.Intn(len(moves))]
		case state.At(game.Center) == game.NoSide:
			move = game.Center
		default:
			return state, nil
		}

		next, err := state.Play(move)
		if err != nil {
			return nil, fmt.Errorf("opening ply %d: %w", i+1, err)
		}
		state = next
	}
	return state, nil
}
