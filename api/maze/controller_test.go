package mazeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/binary-maze/api"
	apii "github.com/beka-birhanu/binary-maze/api/i"
	"github.com/beka-birhanu/binary-maze/maze"
	"github.com/beka-birhanu/binary-maze/service"
	"github.com/beka-birhanu/binary-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}

type failingGenerator struct{}

func (failingGenerator) Generate(int, int, *int64) (*i.GeneratedMaze, error) {
	return nil, errors.New("boom")
}

func newTestEngine(t *testing.T, g i.MazeGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller, err := NewMazeController(g)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []apii.Controller{controller},
	})
	return router.Engine()
}

func serve(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestMazeController(t *testing.T) {
	generator, err := service.NewMazeGenerator(&service.Config{Logger: discardLogger{}})
	require.NoError(t, err)
	engine := newTestEngine(t, generator)

	t.Run("JSON maze with defaults", func(t *testing.T) {
		w := serve(engine, "/api/v1/maze?seed=3")
		require.Equal(t, http.StatusOK, w.Code)

		var response MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 4, response.Rows)
		assert.Equal(t, 8, response.Cols)
		assert.Equal(t, int64(3), response.Seed)
		assert.Equal(t, 31, response.Edges)
		assert.NotEmpty(t, response.ID)

		expected, err := maze.New(4, 8, maze.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, expected.String(), response.Text)
	})

	t.Run("Text maze", func(t *testing.T) {
		w := serve(engine, "/api/v1/maze/text?rows=2&cols=3&seed=9")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

		expected, err := maze.New(2, 3, maze.WithSeed(9))
		require.NoError(t, err)
		assert.Equal(t, expected.String(), w.Body.String())
	})

	t.Run("Rejects invalid query", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/maze?rows=-1",
			"/api/v1/maze?rows=0",
			"/api/v1/maze?cols=0",
			"/api/v1/maze/text?rows=0&cols=2&seed=1",
			"/api/v1/maze/text?rows=2&cols=0&seed=1",
			"/api/v1/maze?cols=101",
			"/api/v1/maze?rows=abc",
			"/api/v1/maze/text?seed=x",
		} {
			w := serve(engine, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Contains(t, w.Body.String(), "error", target)
		}
	})

	t.Run("Omitted dimension keeps its default", func(t *testing.T) {
		w := serve(engine, "/api/v1/maze?rows=2&seed=1")
		require.Equal(t, http.StatusOK, w.Code)

		var response MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Rows)
		assert.Equal(t, 8, response.Cols)
	})

	t.Run("Generator failure", func(t *testing.T) {
		failing := newTestEngine(t, failingGenerator{})
		w := serve(failing, "/api/v1/maze")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.Error(t, err)
}
