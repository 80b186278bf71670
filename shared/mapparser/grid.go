package mapparser

// Grid is a mutable byte matrix; 1 marks a live foreground cell and 0 an
// empty or consumed one. A Grid is owned by one decomposition at a time.
type Grid struct {
	Height, Width int
	cells         []uint8
}

// NewGrid returns an empty height x width grid.
func NewGrid(height, width int) *Grid {
	return &Grid{Height: height, Width: width, cells: make([]uint8, height*width)}
}

// GridFromRows builds a grid from a 0/1 matrix. Non-zero values become 1.
func GridFromRows(rows [][]uint8) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			if v != 0 {
				g.Set(r, c)
			}
		}
	}
	return g
}

// Row returns row r. Writes through the slice modify the grid.
func (g *Grid) Row(r int) []uint8 {
	return g.cells[r*g.Width : (r+1)*g.Width]
}

func (g *Grid) At(r, c int) bool {
	return g.cells[r*g.Width+c] != 0
}

func (g *Grid) Set(r, c int) {
	g.cells[r*g.Width+c] = 1
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}
