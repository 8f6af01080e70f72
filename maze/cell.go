package maze

import "slices"

// Cell is a single position in a maze grid.
//
// Adjacency (North, South, East, West) records which cells are physically next to this one and is
// fixed once the grid is configured. Links record which of those walls have been carved away.
type Cell struct {
	Row int // Row index of the cell
	Col int // Column index of the cell

	North *Cell // Cell directly above, nil on the top row
	South *Cell // Cell directly below, nil on the bottom row
	East  *Cell // Cell to the right, nil on the last column
	West  *Cell // Cell to the left, nil on the first column

	links []*Cell
}

// NewCell creates an unconnected cell at the given position.
func NewCell(row, col int) *Cell {
	return &Cell{Row: row, Col: col}
}

// Equal reports whether two cells occupy the same position.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Row == other.Row && c.Col == other.Col
}

// Link opens a passage between c and other in both directions.
// Linking an already linked pair, or linking to nil, does nothing.
func (c *Cell) Link(other *Cell) {
	if other == nil {
		return
	}
	c.LinkOneWay(other)
	other.LinkOneWay(c)
}

// LinkOneWay records a passage from c to other without touching other.
func (c *Cell) LinkOneWay(other *Cell) {
	if other == nil || c.IsLinked(other) {
		return
	}
	c.links = append(c.links, other)
}

// Unlink closes the passage between c and other in both directions.
func (c *Cell) Unlink(other *Cell) {
	c.UnlinkOneWay(other)
	if other != nil {
		other.UnlinkOneWay(c)
	}
}

// UnlinkOneWay removes other from the links of c only.
func (c *Cell) UnlinkOneWay(other *Cell) {
	if other == nil {
		return
	}
	c.links = slices.DeleteFunc(c.links, other.Equal)
}

// IsLinked reports whether c has a passage to other. A nil neighbour is never linked.
func (c *Cell) IsLinked(other *Cell) bool {
	if other == nil {
		return false
	}
	return slices.ContainsFunc(c.links, other.Equal)
}

// Links returns the linked cells in the order they were linked.
func (c *Cell) Links() []*Cell {
	return slices.Clone(c.links)
}

// Neighbours returns the adjacent cells in north, south, east, west order, skipping missing ones.
func (c *Cell) Neighbours() []*Cell {
	list := make([]*Cell, 0, 4)
	for _, n := range []*Cell{c.North, c.South, c.East, c.West} {
		if n != nil {
			list = append(list, n)
		}
	}
	return list
}
