package maze

// BinaryTree carves g by visiting every cell in row-major order and linking it to either its
// north or its east neighbour, chosen with rnd. The top-right cell has neither and is skipped.
func BinaryTree(g *Grid, rnd RandomSource) {
	g.EachCell(func(cell *Cell) {
		candidates := make([]*Cell, 0, 2)
		if cell.North != nil {
			candidates = append(candidates, cell.North)
		}
		if cell.East != nil {
			candidates = append(candidates, cell.East)
		}
		if len(candidates) == 0 {
			return
		}
		cell.Link(candidates[rnd.Intn(len(candidates))])
	})
}
