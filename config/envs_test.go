package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Run("Defaults when unset", func(t *testing.T) {
		for _, key := range []string{"MAZE_ROWS", "MAZE_COLS", "MAZE_SEED", "MAZE_SERVE", "HOST_IP", "REST_PORT", "GIN_MODE"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg := initConfig()

		assert.Equal(t, 4, cfg.MazeRows)
		assert.Equal(t, 8, cfg.MazeCols)
		assert.Nil(t, cfg.MazeSeed)
		assert.False(t, cfg.Serve)
		assert.Equal(t, "0.0.0.0", cfg.HostIP)
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "release", cfg.GinMode)
	})

	t.Run("Empty values fall back to defaults", func(t *testing.T) {
		for _, key := range []string{"MAZE_ROWS", "MAZE_COLS", "MAZE_SEED", "MAZE_SERVE", "HOST_IP", "REST_PORT", "GIN_MODE"} {
			t.Setenv(key, "")
		}

		cfg := initConfig()

		assert.Equal(t, 4, cfg.MazeRows)
		assert.Equal(t, 8, cfg.MazeCols)
		assert.Nil(t, cfg.MazeSeed)
		assert.False(t, cfg.Serve)
		assert.Equal(t, "0.0.0.0", cfg.HostIP)
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "release", cfg.GinMode)
	})

	t.Run("Reads values from the environment", func(t *testing.T) {
		t.Setenv("MAZE_ROWS", "6")
		t.Setenv("MAZE_COLS", "12")
		t.Setenv("MAZE_SEED", "-17")
		t.Setenv("MAZE_SERVE", "true")
		t.Setenv("HOST_IP", "127.0.0.1")
		t.Setenv("REST_PORT", "9090")
		t.Setenv("GIN_MODE", "debug")

		cfg := initConfig()

		assert.Equal(t, 6, cfg.MazeRows)
		assert.Equal(t, 12, cfg.MazeCols)
		require.NotNil(t, cfg.MazeSeed)
		assert.Equal(t, int64(-17), *cfg.MazeSeed)
		assert.True(t, cfg.Serve)
		assert.Equal(t, "127.0.0.1", cfg.HostIP)
		assert.Equal(t, 9090, cfg.RESTPort)
		assert.Equal(t, "debug", cfg.GinMode)
	})
}
