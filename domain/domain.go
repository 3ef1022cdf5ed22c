package domain

import (
	"errors"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
)

var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("domain: grid is nil")

	// ErrNilPassable indicates a missing passability function or cost model.
	ErrNilPassable = errors.New("domain: passability source is nil")
)

// NoDomain labels impassable cells.
const NoDomain uint32 = 0

// Index maps every cell to its domain. It is read-only after New and safe for
// concurrent use.
type Index struct {
	layer *grid.CellLayer[uint32]
	count int
}

// New labels the regions of g connected through cells for which passable is true.
// Connectivity follows g.Neighbors.
func New(g *grid.Grid, passable func(grid.CPos) bool) (*Index, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if passable == nil {
		return nil, ErrNilPassable
	}

	layer := grid.NewCellLayer[uint32](g)
	var next uint32
	queue := make([]grid.CPos, 0, 64)

	for i := 0; i < g.Size(); i++ {
		start := g.Cell(i)
		if layer.Get(start) != NoDomain || !passable(start) {
			continue
		}

		// BFS flood of one region
		next++
		layer.Set(start, next)
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range g.Neighbors() {
				v := u.Add(d)
				if !g.Contains(v) || layer.Get(v) != NoDomain || !passable(v) {
					continue
				}
				layer.Set(v, next)
				queue = append(queue, v)
			}
		}
	}

	return &Index{layer: layer, count: int(next)}, nil
}

// FromCostModel labels regions of cells whose terrain cost under m is finite.
func FromCostModel(g *grid.Grid, m locomotor.CostModel) (*Index, error) {
	if m == nil {
		return nil, ErrNilPassable
	}
	return New(g, func(c grid.CPos) bool {
		return m.MovementCost(c) != locomotor.CostUnreachable
	})
}

// Domain returns the label of cell, or NoDomain.
func (x *Index) Domain(cell grid.CPos) uint32 {
	if !x.layer.Grid().Contains(cell) {
		return NoDomain
	}
	return x.layer.Get(cell)
}

// IsPassable reports whether a and b lie in the same domain.
func (x *Index) IsPassable(a, b grid.CPos) bool {
	da := x.Domain(a)
	return da != NoDomain && da == x.Domain(b)
}

// Count returns the number of domains.
func (x *Index) Count() int { return x.count }

// Grid returns the labelled grid.
func (x *Index) Grid() *grid.Grid { return x.layer.Grid() }
