package agent

import (
	"context"

	"pente/game"
	"pente/searcher"
)

type Agent interface {
	// FindMove returns the chosen move and the search metrics (if collected)
	FindMove(ctx context.Context, state *game.State) (searcher.Result, error)
}
