package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pente/meta"
	"pente/searcher"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Player1        string        `mapstructure:"PLAYER_1"`
	Player2        string        `mapstructure:"PLAYER_2"`
	Depth          int           `mapstructure:"DEPTH"`
	MaxDepth       int           `mapstructure:"MAX_DEPTH"`
	SearchDuration time.Duration `mapstructure:"SEARCH_DURATION"`
	NumGames       int           `mapstructure:"NUM_GAMES"`
	OpeningPlies   int           `mapstructure:"OPENING_PLIES"`
	Exploration    float64       `mapstructure:"EXPLORATION"`
	MaxMoves       int           `mapstructure:"MAX_MOVES"`
	Seed           uint64        `mapstructure:"SEED"`
	OutputDir      string        `mapstructure:"OUTPUT_DIR"`
	Experiment     string        `mapstructure:"EXPERIMENT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

// Setup reads the config file at cfgPath, if any, on top of the defaults
// in meta. Environment variables prefixed with PENTE_ override both.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PENTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PLAYER_1", meta.PLAYER_1)
	v.SetDefault("PLAYER_2", meta.PLAYER_2)
	v.SetDefault("DEPTH", meta.DEPTH)
	v.SetDefault("MAX_DEPTH", meta.MAX_DEPTH)
	v.SetDefault("SEARCH_DURATION", meta.SEARCH_DURATION)
	v.SetDefault("NUM_GAMES", meta.NUM_GAMES)
	v.SetDefault("OPENING_PLIES", meta.OPENING_PLIES)
	v.SetDefault("EXPLORATION", meta.EXPLORATION)
	v.SetDefault("MAX_MOVES", meta.MAX_MOVES)
	v.SetDefault("SEED", meta.SEED)
	v.SetDefault("OUTPUT_DIR", meta.OUTPUT_DIR)
	v.SetDefault("EXPERIMENT", meta.EXPERIMENT)
	v.SetDefault("LOG_LEVEL", meta.LOG_LEVEL)
}

func (c *Config) Validate() error {
	switch {
	case c.Player1 == "" || c.Player2 == "" || c.Player1 == c.Player2:
		return fmt.Errorf("players %q and %q must be distinct and non-empty: %w", c.Player1, c.Player2, ErrInvalidConfig)
	case c.Depth < 1 || c.Depth > searcher.MaxDepth:
		return fmt.Errorf("depth %d outside [1, %d]: %w", c.Depth, searcher.MaxDepth, ErrInvalidConfig)
	case c.MaxDepth < 1 || c.MaxDepth > searcher.MaxDepth:
		return fmt.Errorf("max depth %d outside [1, %d]: %w", c.MaxDepth, searcher.MaxDepth, ErrInvalidConfig)
	case c.SearchDuration < 0:
		return fmt.Errorf("search duration %s is negative: %w", c.SearchDuration, ErrInvalidConfig)
	case c.NumGames < 1:
		return fmt.Errorf("num games %d must be positive: %w", c.NumGames, ErrInvalidConfig)
	case c.OpeningPlies < 0:
		return fmt.Errorf("opening plies %d is negative: %w", c.OpeningPlies, ErrInvalidConfig)
	case c.Exploration < 0 || c.Exploration > 1:
		return fmt.Errorf("exploration %g outside [0, 1]: %w", c.Exploration, ErrInvalidConfig)
	case c.MaxMoves < 1:
		return fmt.Errorf("max moves %d must be positive: %w", c.MaxMoves, ErrInvalidConfig)
	}
	return nil
}
