package agent

import (
	"context"

	"pente/game"
	"pente/searcher"
)

type evaluationAgent struct {
	search searcher.Searcher
}

// NewEvaluationAgent returns an agent that always plays the searched move.
func NewEvaluationAgent(search searcher.Searcher) Agent {
	return evaluationAgent{search: search}
}

func (a evaluationAgent) FindMove(ctx context.Context, state *game.State) (searcher.Result, error) {
	return a.search.FindMove(ctx, state)
}
