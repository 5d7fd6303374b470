package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pente/meta"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("using defaults without a file", func(t *testing.T) {
		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, meta.DEPTH, cfg.Depth)
		require.Equal(t, 2*time.Second, cfg.SearchDuration)
		require.Equal(t, meta.PLAYER_1, cfg.Player1)
		require.Equal(t, uint64(meta.SEED), cfg.Seed)
	})

	t.Run("reading a yaml file over the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "DEPTH: 3\nSEARCH_DURATION: 250ms\nNUM_GAMES: 4\nEXPLORATION: 0.5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Depth)
		require.Equal(t, 250*time.Millisecond, cfg.SearchDuration)
		require.Equal(t, 4, cfg.NumGames)
		require.Equal(t, 0.5, cfg.Exploration)
		require.Equal(t, meta.MAX_MOVES, cfg.MaxMoves, "Unset keys should keep their defaults")
	})

	t.Run("overriding from the environment", func(t *testing.T) {
		t.Setenv("PENTE_NUM_GAMES", "7")

		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, 7, cfg.NumGames)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("DEPTH: 0\n"), 0o644))

		_, err := Setup(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Player1: "a", Player2: "b", Depth: 2, MaxDepth: 3, NumGames: 1, MaxMoves: 10}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cases := map[string]func(*Config){
		"same players":          func(c *Config) { c.Player2 = "a" },
		"negative duration":     func(c *Config) { c.SearchDuration = -time.Second },
		"no games":              func(c *Config) { c.NumGames = 0 },
		"exploration above one": func(c *Config) { c.Exploration = 1.5 },
		"too deep":              func(c *Config) { c.MaxDepth = 99 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
