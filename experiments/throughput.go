package experiments

import (
	"context"
	"fmt"
	"time"

	"pente/bootstrap"
	"pente/engine"
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const ThroughputPositions = 16

var throughputGoroutines = []int{1, 2, 4, 8}

// RunThroughputExperiment searches the same random positions at every
// depth up to cfg.MaxDepth, running independent searches on an
// increasing number of goroutines. Each search owns its tree, so only the
// records are shared.
func RunThroughputExperiment(ctx context.Context, cfg *bootstrap.Config) (string, error) {
	positions, err := randomPositions(cfg, ThroughputPositions)
	if err != nil {
		return "", err
	}

	configs := []metrics.AgentConfig{}
	moveRecords := []metrics.MoveRecord{}
	gameRecords := []metrics.GameRecord{}

	log.Info().Msg("starting throughput experiment...")

	id := 0
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		config := metrics.AgentConfig{ID: id, Depth: depth, Duration: cfg.SearchDuration}
		configs = append(configs, config)
		id++

		for _, goroutines := range throughputGoroutines {
			start := time.Now()
			records, err := searchAll(ctx, config, positions, goroutines)
			if err != nil {
				return "", fmt.Errorf("depth %d on %d goroutines: %w", depth, goroutines, err)
			}
			elapsed := time.Since(start)

			nodes := 0
			for _, r := range records {
				nodes += r.Nodes
			}
			log.Info().Msgf("depth %d on %d goroutines: %d nodes in %s (%.0f nodes/s)",
				depth, goroutines, nodes, elapsed, float64(nodes)/elapsed.Seconds())

			run := metrics.GameRecord{
				ID:     uuid.NewString(),
				Agent1: config.ID,
				Agent2: goroutines, // goroutine count, not an agent
				GameMetric: metrics.GameMetric{
					StartTime:  start,
					EndTime:    start.Add(elapsed),
					Duration:   elapsed,
					TotalMoves: len(records),
				},
			}
			gameRecords = append(gameRecords, run)
			for _, r := range records {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: run.ID, MoveMetric: r})
			}
		}
	}

	log.Info().Msg("completed throughput experiment")
	return store(cfg.OutputDir, "throughput", configs, gameRecords, moveRecords, nil)
}

func randomPositions(cfg *bootstrap.Config, n int) ([]*game.State, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	positions := make([]*game.State, 0, n)
	for i := 0; i < n; i++ {
		state, err := game.NewEmptyState(cfg.Player1, cfg.Player2)
		if err != nil {
			return nil, err
		}
		state, err = engine.RandomOpening(state, cfg.OpeningPlies+4, rng)
		if err != nil {
			return nil, err
		}
		positions = append(positions, state)
	}
	return positions, nil
}

// searchAll finds a move for every position, using at most goroutines
// concurrent searches. Each position is searched by exactly one goroutine.
func searchAll(ctx context.Context, config metrics.AgentConfig, positions []*game.State, goroutines int) ([]metrics.MoveMetric, error) {
	records := make([]metrics.MoveMetric, len(positions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(goroutines)
	for i, position := range positions {
		i, position := i, position
		g.Go(func() error {
			search := createSearch(config)
			result, err := search.FindMove(ctx, position)
			if err != nil {
				return err
			}

			records[i] = metrics.MoveMetric{
				Step:         i + 1,
				Player:       position.Player(position.ToMove()),
				Move:         result.Move.String(),
				Value:        result.Value,
				Fallback:     result.Fallback,
				SearchMetric: result.Metrics,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func createSearch(config metrics.AgentConfig) *searcher.AlphaBeta {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	return searcher.NewAlphaBeta(config.Depth, options...)
}
