// Package mazeapi exposes maze generation over HTTP.
package mazeapi

// MazeRequest holds the query parameters of a maze request. Omitted dimensions fall back to 4x8; an explicit 0 is rejected.
type MazeRequest struct {
	Rows *int   `form:"rows" binding:"omitempty,min=1,max=100"`
	Cols *int   `form:"cols" binding:"omitempty,min=1,max=100"`
	Seed *int64 `form:"seed"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID    string `json:"id"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Seed  int64  `json:"seed"`
	Edges int    `json:"edges"`
	Text  string `json:"text"`
}
