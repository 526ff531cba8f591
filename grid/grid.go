package grid

// Grid is a rectangular field of integer cells.
type Grid struct {
	Width, Height int
	Conn          Connectivity

	cells []int
}

// New returns a width×height grid with every cell set to fill.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(width, height, fill int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Width: width, Height: height, cells: make([]int, width*height)}
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}

	return g, nil
}

// FromLines builds a grid from text rows, converting each rune with parse.
// Blank lines are skipped. A parse error aborts construction and is
// returned unchanged.
// Returns ErrEmptyGrid for no non-blank rows, ErrNonRectangular if any
// row length differs from the first.
func FromLines(lines []string, parse func(r rune, p Position) (int, error)) (*Grid, error) {
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{Width: w, Height: len(rows), cells: make([]int, w*len(rows))}
	for y, row := range rows {
		for x, r := range row {
			v, err := parse(r, Position{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			g.cells[g.index(Position{X: x, Y: y})] = v
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the value at p. It panics if p is out of bounds.
func (g *Grid) At(p Position) int {
	if !g.InBounds(p) {
		panic("grid: At " + p.String() + " out of bounds")
	}

	return g.cells[g.index(p)]
}

// Set stores v at p. It panics if p is out of bounds.
func (g *Grid) Set(p Position, v int) {
	if !g.InBounds(p) {
		panic("grid: Set " + p.String() + " out of bounds")
	}
	g.cells[g.index(p)] = v
}

// Neighbours returns the in-bounds neighbours of p in N, E, S, W order
// (with diagonals interleaved clockwise for Conn8).
func (g *Grid) Neighbours(p Position) []Position {
	offs := g.offsets()
	out := make([]Position, 0, len(offs))
	for _, d := range offs {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Positions returns every position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, len(g.cells))
	for i := range g.cells {
		out = append(out, g.position(i))
	}

	return out
}

// Find returns the first position, row-major, whose value satisfies pred.
func (g *Grid) Find(pred func(v int) bool) (Position, bool) {
	for i, v := range g.cells {
		if pred(v) {
			return g.position(i), true
		}
	}

	return Position{}, false
}

func (g *Grid) offsets() [][2]int {
	if g.Conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// index maps p to its row-major slot: Y*Width + X.
func (g *Grid) index(p Position) int {
	return p.Y*g.Width + p.X
}

// position converts a row-major slot back to a Position.
func (g *Grid) position(i int) Position {
	return Position{X: i % g.Width, Y: i / g.Width}
}
