package agent

import (
	"context"
	"sync"

	"pente/game"
	"pente/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	search      searcher.Searcher
	exploration float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that plays a uniformly
// random frontier move with probability exploration, and the searched
// move otherwise.
func NewTrainingAgent(search searcher.Searcher, exploration float64, seed uint64) Agent {
	return &trainingAgent{
		search:      search,
		exploration: min(max(exploration, 0), 1),
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(ctx context.Context, state *game.State) (searcher.Result, error) {
	if state == nil {
		return searcher.Result{}, searcher.ErrNilState
	}
	if move, ok := a.explore(state); ok {
		log.Debug().Str("move", move.String()).Msg("exploring a random move")
		return searcher.Result{Move: move, Random: true}, nil
	}
	return a.search.FindMove(ctx, state)
}

func (a *trainingAgent) explore(state *game.State) (game.Coordinate, bool) {
	moves := state.Moves()
	if len(moves) == 0 {
		return game.Coordinate{}, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.rng.Float64() >= a.exploration {
		return game.Coordinate{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
