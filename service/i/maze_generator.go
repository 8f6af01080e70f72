package i

import (
	"github.com/beka-birhanu/binary-maze/maze"
	"github.com/google/uuid"
)

// GeneratedMaze is a carved maze together with what is needed to reproduce it.
type GeneratedMaze struct {
	ID   uuid.UUID
	Seed int64
	Grid *maze.Grid
}

// MazeGenerator creates binary-tree mazes.
type MazeGenerator interface {
	// Generate carves a rows x cols maze. A nil seed lets the generator pick one.
	Generate(rows, cols int, seed *int64) (*GeneratedMaze, error)
}
