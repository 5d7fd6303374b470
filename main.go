package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"pente/bootstrap"
	"pente/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a config file")
	experiment := flag.String("experiment", "", "Experiment to run: depth, deadline, selfplay or throughput")
	level := flag.String("log-level", "", "Log level, overrides the config")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *experiment != "" {
		cfg.Experiment = *experiment
	}
	if *level != "" {
		cfg.LogLevel = *level
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := experiments.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Experiment)
	}
	log.Info().Msgf("results stored in %s", dir)
}
