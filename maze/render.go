package maze

import "strings"

const (
	cellBody   = "   "
	wallSouth  = "---"
	openSouth  = "   "
	corner     = "+"
	wallEast   = "|"
	openEast   = " "
	borderWest = "|"
)

// Render draws g as ASCII art. Each row becomes two lines: the cell bodies with their east
// boundaries, then the south boundaries. Walls are derived only from the link relation, so a cell
// on the edge of the grid is always walled on that side.
func Render(g *Grid) string {
	var output strings.Builder

	// Top boundary
	output.WriteString(corner + strings.Repeat(wallSouth+corner, g.cols) + "\n")

	for _, cells := range g.cells {
		top := strings.Builder{}
		bottom := strings.Builder{}
		top.WriteString(borderWest)
		bottom.WriteString(corner)

		for _, cell := range cells {
			top.WriteString(cellBody)
			if cell.IsLinked(cell.East) {
				top.WriteString(openEast)
			} else {
				top.WriteString(wallEast)
			}

			if cell.IsLinked(cell.South) {
				bottom.WriteString(openSouth)
			} else {
				bottom.WriteString(wallSouth)
			}
			bottom.WriteString(corner)
		}

		output.WriteString(top.String() + "\n")
		output.WriteString(bottom.String() + "\n")
	}

	return output.String()
}
