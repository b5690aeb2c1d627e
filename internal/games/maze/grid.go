package maze

// grid is the static wall layout.
type grid struct {
	w, h  int
	walls [][]bool
}

func newGrid(layout []string) grid {
	g := grid{h: len(layout)}
	for _, row := range layout {
		g.w = max(g.w, len(row))
	}
	g.walls = make([][]bool, g.h)
	for y, row := range layout {
		g.walls[y] = make([]bool, g.w)
		for x := 0; x < g.w; x++ {
			g.walls[y][x] = x < len(row) && row[x] == cellWall
		}
	}
	return g
}

func (g grid) passable(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	return !g.walls[y][x]
}
