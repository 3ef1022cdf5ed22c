package grid

// New constructs a Grid of width×height map positions.
// Returns ErrEmptyGrid if either dimension is not positive,
// ErrBadGridType or ErrBadConnectivity for unknown options.
// Complexity: O(1).
func New(width, height int, opts Options) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Type != Rectangular && opts.Type != RectangularIsometric {
		return nil, ErrBadGridType
	}

	// Precompute neighbor offsets based on connectivity
	var offsets []CVec
	switch opts.Conn {
	case Conn8:
		offsets = Directions[:]
	case Conn4:
		offsets = Orthogonal[:]
	default:
		return nil, ErrBadConnectivity
	}

	return &Grid{
		Width:     width,
		Height:    height,
		Type:      opts.Type,
		Conn:      opts.Conn,
		neighbors: offsets,
	}, nil
}

// MustNew is New for fixtures whose dimensions are known to be valid.
func MustNew(width, height int, opts Options) *Grid {
	g, err := New(width, height, opts)
	if err != nil {
		panic(err)
	}
	return g
}

// Contains reports whether the cell lies within the map.
// Complexity: O(1).
func (g *Grid) Contains(c CPos) bool {
	if g.Type == RectangularIsometric {
		// ToMPos maps (x,y) and (y,x) to the same row when x<y; such cells are never valid.
		if c.X < c.Y {
			return false
		}
	}
	return g.containsMPos(g.ToMPos(c))
}

func (g *Grid) containsMPos(uv MPos) bool {
	return uv.U >= 0 && uv.U < g.Width && uv.V >= 0 && uv.V < g.Height
}

// ToMPos converts a cell position to its map (storage) position.
func (g *Grid) ToMPos(c CPos) MPos {
	if g.Type == Rectangular {
		return MPos{U: c.X, V: c.Y}
	}
	return MPos{U: (c.X - c.Y) / 2, V: c.X + c.Y}
}

// ToCPos converts a map position back to a cell position.
func (g *Grid) ToCPos(uv MPos) CPos {
	if g.Type == Rectangular {
		return CPos{X: uv.U, Y: uv.V}
	}
	offset := uv.V & 1
	y := (uv.V-offset)/2 - uv.U
	return CPos{X: uv.V - y, Y: y}
}

// Size returns the number of cells in the map.
func (g *Grid) Size() int { return g.Width * g.Height }

// Index maps a contained cell to its row-major storage index.
// The result is meaningless for cells outside the map; check Contains first.
// Complexity: O(1).
func (g *Grid) Index(c CPos) int {
	uv := g.ToMPos(c)
	return uv.V*g.Width + uv.U
}

// Cell converts a row-major index back to a cell position.
// Complexity: O(1).
func (g *Grid) Cell(idx int) CPos {
	return g.ToCPos(MPos{U: idx % g.Width, V: idx / g.Width})
}

// Neighbors returns the precomputed neighbor offsets in their fixed order.
// The slice is shared; callers must not modify it.
func (g *Grid) Neighbors() []CVec {
	return g.neighbors
}

// Cells returns every cell of the map in row-major storage order.
// Complexity: O(W×H).
func (g *Grid) Cells() []CPos {
	out := make([]CPos, 0, g.Size())
	for i := 0; i < g.Size(); i++ {
		out = append(out, g.Cell(i))
	}
	return out
}
