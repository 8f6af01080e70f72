/*
Package maze provides tools for creating and rendering rectangular mazes.

A Grid owns its Cells in row-major order and wires each cell to its physical neighbours. Passages
between cells are a separate link relation carved by the binary-tree algorithm: every cell opens
either its north or its east wall, which yields a perfect maze whose top row and right column are
unbroken corridors.

The grid is rendered as ASCII art with `+`, `-`, `|` and spaces.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Grid represents a rectangular maze of linked cells.
type Grid struct {
	rows  int
	cols  int
	cells [][]*Cell
}

// Option configures maze construction.
type Option func(*options)

type options struct {
	random RandomSource
}

// WithRandomSource sets the random source used while carving.
func WithRandomSource(r RandomSource) Option {
	return func(o *options) {
		o.random = r
	}
}

// WithSeed carves with a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.random = NewRandomSource(seed)
	}
}

// New builds a rows x cols grid, wires the adjacency of every cell and carves it with the
// binary-tree algorithm.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.random == nil {
		o.random = newTimeSeededSource()
	}

	BinaryTree(g, o.random)
	return g, nil
}

// newGrid prepares and configures a grid without carving it.
func newGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{rows: rows, cols: cols}
	g.prepare()
	g.configure()
	return g, nil
}

// prepare allocates every cell in row-major order.
func (g *Grid) prepare() {
	g.cells = make([][]*Cell, g.rows)
	for row := range g.cells {
		g.cells[row] = make([]*Cell, g.cols)
		for col := range g.cells[row] {
			g.cells[row][col] = NewCell(row, col)
		}
	}
}

// configure points every cell at its in-bounds neighbours.
func (g *Grid) configure() {
	for row, cells := range g.cells {
		for col, cell := range cells {
			if row > 0 {
				cell.North = g.cells[row-1][col]
			}
			if row < g.rows-1 {
				cell.South = g.cells[row+1][col]
			}
			if col < g.cols-1 {
				cell.East = g.cells[row][col+1]
			}
			if col > 0 {
				cell.West = g.cells[row][col-1]
			}
		}
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// Cell returns the cell at (row, col). It panics when the position is outside the grid.
func (g *Grid) Cell(row, col int) *Cell {
	g.mustContain(row, col)
	return g.cells[row][col]
}

// SetCellAt replaces the cell stored at (row, col).
// Adjacency of the surrounding cells is left untouched.
func (g *Grid) SetCellAt(row, col int, cell *Cell) {
	g.mustContain(row, col)
	if cell == nil {
		panic("maze: SetCellAt with nil cell")
	}
	g.cells[row][col] = cell
}

// EachCell calls fn for every cell in row-major order.
func (g *Grid) EachCell(fn func(*Cell)) {
	for _, cells := range g.cells {
		for _, cell := range cells {
			fn(cell)
		}
	}
}

// EdgeCount returns the number of undirected links in the grid.
func (g *Grid) EdgeCount() int {
	total := 0
	g.EachCell(func(c *Cell) {
		total += len(c.links)
	})
	return total / 2
}

func (g *Grid) mustContain(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("maze: cell (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return Render(g)
}
