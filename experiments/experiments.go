package experiments

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"pente/bootstrap"
	"pente/engine"
	"pente/experiments/metrics"
	"pente/game"
	"pente/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Run dispatches to the experiment named in cfg.
func Run(ctx context.Context, cfg *bootstrap.Config) (string, error) {
	switch cfg.Experiment {
	case "depth":
		return RunDepthExperiment(ctx, cfg)
	case "deadline":
		return RunDeadlineExperiment(ctx, cfg)
	case "selfplay":
		return RunSelfPlay(ctx, cfg)
	case "throughput":
		return RunThroughputExperiment(ctx, cfg)
	default:
		return "", fmt.Errorf("unknown experiment %q", cfg.Experiment)
	}
}

// RunDepthExperiment pairs a depth-1 baseline against agents of every
// depth up to cfg.MaxDepth.
func RunDepthExperiment(ctx context.Context, cfg *bootstrap.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Duration: cfg.SearchDuration}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Depth: depth, Duration: cfg.SearchDuration}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, cfg, "depth", configs, matchUps)
}

// RunDeadlineExperiment pits unbounded search against the same depth
// under shrinking deadlines.
func RunDeadlineExperiment(ctx context.Context, cfg *bootstrap.Config) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: cfg.Depth}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, deadline := range []time.Duration{100 * time.Millisecond, 20 * time.Millisecond, 5 * time.Millisecond} {
		config := metrics.AgentConfig{ID: i + 1, Depth: cfg.Depth, Duration: deadline}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(ctx, cfg, "deadline", configs, matchUps)
}

// RunSelfPlay plays exploring agents of the configured depth against each
// other to produce varied game records.
func RunSelfPlay(ctx context.Context, cfg *bootstrap.Config) (string, error) {
	config := metrics.AgentConfig{ID: 0, Depth: cfg.Depth, Duration: cfg.SearchDuration, Exploration: cfg.Exploration}
	return runExperiment(ctx, cfg, "selfplay", []metrics.AgentConfig{config}, [][]metrics.AgentConfig{{config, config}})
}

func runExperiment(ctx context.Context, cfg *bootstrap.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	rows := []metrics.MoveRow{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < cfg.NumGames; i++ {
			// Alternate the starting agent
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			id := uuid.NewString()
			log.Info().Msgf("starting matchup %d of %d game %d of %d (%s)...", mi+1, len(matchUps), i+1, cfg.NumGames, id)

			played, err := runGame(ctx, cfg, config1, config2, rng.Uint64())
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: played.gameMetric,
			})
			for _, mm := range played.moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}
			rows = append(rows, archiveRows(id, played)...)

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, played.gameMetric.Outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(cfg.OutputDir, name, configs, gameRecords, moveRecords, rows)
	if err != nil {
		return "", err
	}
	return dir, nil
}

func store(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, rows []metrics.MoveRow) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = metrics.WriteArchive(filepath.Join(writer.Dir(), "moves.parquet"), rows)
	if err != nil {
		return "", fmt.Errorf("failed to write move archive: %w", err)
	}
	log.Info().Msg("stored move archive")

	return writer.Dir(), nil
}

type playedGame struct {
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
	history     []*game.State
}

// runGame plays a single game from a random opening, config1 moving first.
func runGame(ctx context.Context, cfg *bootstrap.Config, config1, config2 metrics.AgentConfig, seed uint64) (playedGame, error) {
	rng := rand.New(rand.NewSource(seed))
	state, err := game.NewEmptyState(cfg.Player1, cfg.Player2)
	if err != nil {
		return playedGame{}, err
	}
	state, err = engine.RandomOpening(state, cfg.OpeningPlies, rng)
	if err != nil {
		return playedGame{}, err
	}

	agents := []agent.Agent{
		createAgent(config1, rng.Uint64()),
		createAgent(config2, rng.Uint64()),
	}
	// The opening may leave either side to move
	if state.ToMove() == game.Second {
		agents[0], agents[1] = agents[1], agents[0]
	}
	e := engine.LocalEngine(state, agents, engine.WithMaxMoves(cfg.MaxMoves))

	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return playedGame{}, err
	}
	return playedGame{gameMetric: gameMetric, moveMetrics: moveMetrics, history: e.History()}, nil
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	search := createSearch(config)
	if config.Exploration > 0 {
		return agent.NewTrainingAgent(search, config.Exploration, seed)
	}
	return agent.NewEvaluationAgent(search)
}

func archiveRows(id string, played playedGame) []metrics.MoveRow {
	rows := make([]metrics.MoveRow, 0, len(played.history))
	for i, state := range played.history {
		move, _ := state.Move()
		row := metrics.MoveRow{
			GameID:   id,
			Step:     int32(i + 1),
			Player:   state.Player(state.ToMove().Opponent()),
			MoveX:    int32(move.X),
			MoveY:    int32(move.Y),
			Captures: []int32{int32(state.Captures(game.First)), int32(state.Captures(game.Second))},
			Outcome:  played.gameMetric.Outcome,
			Winner:   played.gameMetric.Winner,
		}
		if i < len(played.moveMetrics) {
			row.Value = int64(played.moveMetrics[i].Value)
			row.Nodes = int64(played.moveMetrics[i].Nodes)
			row.Depth = int32(played.moveMetrics[i].Depth)
		}
		for owner, side := range []game.Side{game.First, game.Second} {
			for _, c := range state.Stones(side) {
				row.StoneX = append(row.StoneX, int32(c.X))
				row.StoneY = append(row.StoneY, int32(c.Y))
				row.StoneOwner = append(row.StoneOwner, int32(owner))
			}
		}
		rows = append(rows, row)
	}
	return rows
}
