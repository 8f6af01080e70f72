package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/binary-maze/maze"
	"github.com/beka-birhanu/binary-maze/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

const (
	MaxDimension = 100
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)

// MazeGenerator carves mazes from seeded random sources.
type MazeGenerator struct {
	sourceFactory func(int64) maze.RandomSource
	clock         func() time.Time
	logger        general_i.Logger
}

// Config holds the collaborators of a MazeGenerator.
type Config struct {
	SourceFactory func(int64) maze.RandomSource // Defaults to maze.NewRandomSource
	Logger        general_i.Logger
}

// NewMazeGenerator creates a MazeGenerator from c.
func NewMazeGenerator(c *Config) (*MazeGenerator, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("maze generator requires a logger")
	}

	factory := c.SourceFactory
	if factory == nil {
		factory = maze.NewRandomSource
	}

	return &MazeGenerator{
		sourceFactory: factory,
		clock:         time.Now,
		logger:        c.Logger,
	}, nil
}

// Generate carves a rows x cols maze. When seed is nil one is taken from the clock; the chosen seed
// is returned so the same maze can be produced again.
func (g *MazeGenerator) Generate(rows, cols int, seed *int64) (*i.GeneratedMaze, error) {
	if max(rows, cols) > MaxDimension {
		g.logger.Warning(fmt.Sprintf("rejected maze of %dx%d", rows, cols))
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, rows, cols, MaxDimension)
	}

	s := g.clock().UnixNano()
	if seed != nil {
		s = *seed
	}

	grid, err := maze.New(rows, cols, maze.WithRandomSource(g.sourceFactory(s)))
	if err != nil {
		g.logger.Warning(fmt.Sprintf("rejected maze of %dx%d: %s", rows, cols, err))
		return nil, err
	}

	generated := &i.GeneratedMaze{
		ID:   uuid.New(),
		Seed: s,
		Grid: grid,
	}
	g.logger.Info(fmt.Sprintf("generated maze %s (%dx%d, seed %d)", generated.ID, rows, cols, s))
	return generated, nil
}
