package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/binary-maze/maze"
	"github.com/beka-birhanu/binary-maze/service"
	"github.com/beka-birhanu/binary-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultRows = 4
	defaultCols = 8
)

// MazeController serves generated mazes.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	return &MazeController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.GET("", mc.maze)
		mazes.GET("/text", mc.text)
	}
}

// maze responds with the maze and its metadata as JSON.
func (mc *MazeController) maze(ctx *gin.Context) {
	generated, ok := mc.generate(ctx)
	if !ok {
		return
	}

	response := &MazeResponse{
		ID:    generated.ID.String(),
		Rows:  generated.Grid.Rows(),
		Cols:  generated.Grid.Cols(),
		Seed:  generated.Seed,
		Edges: generated.Grid.EdgeCount(),
		Text:  generated.Grid.String(),
	}
	ctx.JSON(http.StatusOK, response)
}

// text responds with the rendering only.
func (mc *MazeController) text(ctx *gin.Context) {
	generated, ok := mc.generate(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(generated.Grid.String()))
}

func (mc *MazeController) generate(ctx *gin.Context) (*i.GeneratedMaze, bool) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	rows, cols := defaultRows, defaultCols
	if request.Rows != nil {
		rows = *request.Rows
	}
	if request.Cols != nil {
		cols = *request.Cols
	}

	generated, err := mc.generator.Generate(rows, cols, request.Seed)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) || errors.Is(err, service.ErrDimensionTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, false
	}
	return generated, true
}
