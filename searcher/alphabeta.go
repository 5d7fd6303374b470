package searcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pente/experiments/metrics"
	"pente/game"

	"github.com/rs/zerolog/log"
)

type Option func(a *AlphaBeta)

// AlphaBeta is a fixed-depth minimax search with alpha-beta pruning.
// Children are expanded in frontier order. A search owns its tree, so an
// AlphaBeta can be reused but not shared between goroutines.
type AlphaBeta struct {
	depth     int
	duration  time.Duration
	evaluator game.Evaluator
	rules     game.Terminal
	fallback  Fallback
	metrics   metrics.Collector
}

// WithDuration bounds each FindMove call by a wall-clock deadline.
func WithDuration(duration time.Duration) Option {
	return func(a *AlphaBeta) {
		if duration > 0 {
			a.duration = duration
		}
	}
}

func WithEvaluator(evaluator game.Evaluator) Option {
	return func(a *AlphaBeta) {
		if evaluator != nil {
			a.evaluator = evaluator
		}
	}
}

func WithRules(rules game.Terminal) Option {
	return func(a *AlphaBeta) {
		if rules != nil {
			a.rules = rules
		}
	}
}

func WithFallback(fallback Fallback) Option {
	return func(a *AlphaBeta) {
		if fallback != nil {
			a.fallback = fallback
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth <= 0 || depth > MaxDepth {
		panic(fmt.Sprintf("Search depth must be between 1 and %d, got %d", MaxDepth, depth))
	}
	a := &AlphaBeta{ // Default values
		depth:     depth,
		evaluator: game.NewPatternEvaluator(),
		rules:     game.NewStandardRules(),
		fallback:  CenterFallback,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

func (a *AlphaBeta) Duration() time.Duration {
	return a.duration
}

// FindMove searches state to the configured depth and returns the move
// for the side to move. When the deadline passes first, the best root
// move found so far is returned and the result is marked interrupted.
// Cancellation of ctx itself is reported as an error.
func (a *AlphaBeta) FindMove(ctx context.Context, state *game.State) (Result, error) {
	if state == nil {
		return Result{}, ErrNilState
	}

	searchCtx := ctx
	if a.duration > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, a.duration)
		defer cancel()
	}

	a.metrics.Start(a.depth, a.duration)
	value, best, err := a.Search(searchCtx, state, a.depth, -Infinity, Infinity)
	interrupted := false
	if err != nil {
		if ctx.Err() != nil || !errors.Is(err, context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("search interrupted: %w", err)
		}
		interrupted = true
		a.metrics.SetInterrupted()
		log.Warn().Msgf("search deadline of %s reached, using the best move found so far", a.duration)
	}

	result := Result{Value: value, Interrupted: interrupted}
	if best != nil && best != state {
		result.Move, _ = best.Move()
		result.Child = best
	} else {
		move, ok := a.fallback(state)
		if !ok {
			return Result{}, ErrNoMove
		}
		log.Warn().Msgf("search produced no move for %s, falling back to %s", state.Player(state.ToMove()), move)
		result.Move = move
		result.Value = a.evaluator.Evaluate(state)
		result.Fallback = true
	}
	result.Metrics = a.metrics.Complete()

	log.Debug().
		Int("depth", a.depth).
		Int("value", result.Value).
		Str("move", result.Move.String()).
		Int("nodes", result.Metrics.Nodes).
		Msg("search completed")
	return result, nil
}

// Search returns the minimax value of state and the child that achieves
// it. A leaf returns itself. Bounds are only tightened on strict
// improvement, so the first best child in frontier order wins ties.
// On error, the value and child reflect the children fully searched so
// far.
func (a *AlphaBeta) Search(ctx context.Context, state *game.State, depth, alpha, beta int) (int, *game.State, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	a.metrics.AddNode()

	if depth <= 0 || a.rules.Terminated(state) != game.Ongoing {
		return a.evaluate(state), state, nil
	}
	moves := state.Moves()
	if len(moves) == 0 {
		return a.evaluate(state), state, nil
	}

	var best *game.State
	maximizing := state.Maximizing()
	for _, move := range moves {
		child, err := state.Play(move)
		if err != nil {
			return a.bound(maximizing, alpha, beta), best, err
		}
		value, _, err := a.Search(ctx, child, depth-1, alpha, beta)
		if err != nil {
			return a.bound(maximizing, alpha, beta), best, err
		}
		if maximizing && value > alpha {
			alpha = value
			best = child
		} else if !maximizing && value < beta {
			beta = value
			best = child
		}
		if beta <= alpha {
			a.metrics.AddCutoff()
			break
		}
	}

	value := a.bound(maximizing, alpha, beta)
	choice := game.Choice{Value: value}
	if best != nil {
		choice.Move, _ = best.Move()
		choice.Found = true
	}
	state.Record(choice)
	return value, best, nil
}

func (a *AlphaBeta) bound(maximizing bool, alpha, beta int) int {
	if maximizing {
		return alpha
	}
	return beta
}

func (a *AlphaBeta) evaluate(state *game.State) int {
	start := time.Now()
	value := a.evaluator.Evaluate(state)
	a.metrics.AddLeaf(time.Since(start))
	return value
}
