package searcher

import (
	"context"
	"errors"

	"pente/experiments/metrics"
	"pente/game"
)

var (
	ErrNilState = errors.New("nil state")
	ErrNoMove   = errors.New("no move available")
)

type Searcher interface {
	FindMove(ctx context.Context, state *game.State) (Result, error)
}

// Result of a root search. Value is from the First side's point of view.
type Result struct {
	Move        game.Coordinate
	Value       int
	Child       *game.State // nil when the move came from the fallback policy
	Fallback    bool
	Interrupted bool // deadline hit before the search completed
	Random      bool // picked by exploration rather than search
	Metrics     metrics.SearchMetric
}

// Fallback picks a move when the search produces none.
type Fallback func(*game.State) (game.Coordinate, bool)

// CenterFallback plays the centre, or the first frontier cell when the
// centre is taken.
func CenterFallback(s *game.State) (game.Coordinate, bool) {
	if s.At(game.Center) == game.NoSide {
		return game.Center, true
	}
	moves := s.Moves()
	if len(moves) == 0 {
		return game.Coordinate{}, false
	}
	return moves[0], true
}

// FixedFallback always answers c, occupied or not.
func FixedFallback(c game.Coordinate) Fallback {
	return func(*game.State) (game.Coordinate, bool) {
		return c, true
	}
}
