package engine

import (
	"context"
	"fmt"
	"time"

	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher/agent"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

// Local runs a game between two in-process agents.
type Local struct {
	state    *game.State
	agents   [2]agent.Agent // indexed by side: First, then Second
	rules    game.Rules
	maxMoves int
	history  []*game.State
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *Local) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Local) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// LocalEngine sets up a game from state. agents[0] plays the First side.
func LocalEngine(state *game.State, agents []agent.Agent, options ...Option) *Local {
	if state == nil {
		panic("starting state is nil")
	}
	if len(agents) != 2 {
		panic(fmt.Sprintf("need two agents, got %d", len(agents)))
	}

	e := &Local{
		state:    state,
		agents:   [2]agent.Agent{agents[0], agents[1]},
		rules:    game.NewStandardRules(),
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) State() *game.State {
	return e.state
}

// History returns the state after each move played so far.
func (e *Local) History() []*game.State {
	out := make([]*game.State, len(e.history))
	copy(out, e.history)
	return out
}

// Run executes the game loop until the rules decide the game or the move
// limit is reached. Agent errors abort the game.
func (e *Local) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.Player(e.state.ToMove()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", gameMetric.StartingPlayer)

	outcome := e.rules.DeeperWinner(e.state)
	for step := 1; outcome == game.Ongoing && step <= e.maxMoves; step++ {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, err
		}

		side := e.state.ToMove()
		player := e.state.Player(side)
		result, err := e.agentFor(side).FindMove(ctx, e.state)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("move %d by %s: %w", step, player, err)
		}

		next, forced, err := e.play(result.Move)
		if err != nil {
			log.Warn().Msgf("stopping game at move %d: %v", step, err)
			break
		}
		move, _ := next.Move()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move.String(),
			Value:        result.Value,
			Captures:     len(next.Captured()),
			Fallback:     result.Fallback || forced,
			Random:       result.Random,
			SearchMetric: result.Metrics,
		})
		log.Debug().Int("step", step).Str("player", player).Str("move", move.String()).Int("value", result.Value).Msg("move played")

		e.state = next
		e.history = append(e.history, next)
		outcome = e.rules.DeeperWinner(next)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Outcome = outcome.String()
	gameMetric.Winner = e.state.Player(outcome.Winner())

	if outcome == game.Ongoing {
		log.Info().Msgf("stopped after %d moves without a result", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, outcome)
	}
	return gameMetric, moveMetrics, nil
}

func (e *Local) agentFor(side game.Side) agent.Agent {
	if side == game.First {
		return e.agents[0]
	}
	return e.agents[1]
}

// play applies move, forcing the first legal move when the agent's move
// is invalid.
func (e *Local) play(move game.Coordinate) (*game.State, bool, error) {
	next, err := e.state.Play(move)
	if err == nil {
		return next, false, nil
	}

	legal := e.state.Moves()
	if len(legal) == 0 && e.state.At(game.Center) == game.NoSide {
		legal = []game.Coordinate{game.Center}
	}
	if len(legal) == 0 {
		return nil, false, fmt.Errorf("no legal move after invalid move %s: %w", move, err)
	}
	log.Warn().Msgf("agent returned an invalid move %s (%v), forcing %s", move, err, legal[0])
	next, err = e.state.Play(legal[0])
	return next, true, err
}
