package engine

import (
	"context"

	"pente/experiments/metrics"
)

// Games still running after MaxMoves are stopped without a winner.
const MaxMoves = 500

type Engine interface {
	// Run plays a game till there's a result or a max number of moves is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
