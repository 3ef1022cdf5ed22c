package grid

import (
	"fmt"
	"sync"
)

// CellLayer stores one value of type T per map cell.
// Accessing a cell outside the grid is a programming error and panics.
type CellLayer[T any] struct {
	grid    *Grid
	entries []T
}

// NewCellLayer allocates a zero-valued layer covering g.
// Complexity: O(W×H).
func NewCellLayer[T any](g *Grid) *CellLayer[T] {
	return &CellLayer[T]{grid: g, entries: make([]T, g.Size())}
}

// Grid returns the grid the layer was sized for.
func (l *CellLayer[T]) Grid() *Grid { return l.grid }

// Get returns the value stored for c.
func (l *CellLayer[T]) Get(c CPos) T {
	return l.entries[l.index(c)]
}

// Set stores v for c.
func (l *CellLayer[T]) Set(c CPos, v T) {
	l.entries[l.index(c)] = v
}

// Clear resets every cell to v.
// Complexity: O(W×H).
func (l *CellLayer[T]) Clear(v T) {
	for i := range l.entries {
		l.entries[i] = v
	}
}

// CopyValuesFrom copies all values from other, which must cover a grid of the same size.
func (l *CellLayer[T]) CopyValuesFrom(other *CellLayer[T]) {
	if len(other.entries) != len(l.entries) {
		panic(fmt.Sprintf("grid: layer size mismatch %d != %d", len(other.entries), len(l.entries)))
	}
	copy(l.entries, other.entries)
}

func (l *CellLayer[T]) index(c CPos) int {
	if !l.grid.Contains(c) {
		panic(fmt.Sprintf("grid: cell %s outside %dx%d map", c, l.grid.Width, l.grid.Height))
	}
	return l.grid.Index(c)
}

// LayerPool recycles CellLayers of one grid so that frequent short-lived
// searches do not reallocate their node tables. Layers handed out by Get are
// reset to the pool's initial value and are exclusively owned until Put.
type LayerPool[T any] struct {
	grid    *Grid
	initial T
	pool    sync.Pool
}

// NewLayerPool creates a pool of layers for g, each cleared to initial.
func NewLayerPool[T any](g *Grid, initial T) *LayerPool[T] {
	return &LayerPool[T]{grid: g, initial: initial}
}

// Grid returns the grid the pooled layers cover.
func (p *LayerPool[T]) Grid() *Grid { return p.grid }

// Get returns a layer cleared to the pool's initial value.
func (p *LayerPool[T]) Get() *CellLayer[T] {
	if l, ok := p.pool.Get().(*CellLayer[T]); ok {
		l.Clear(p.initial)
		return l
	}
	l := NewCellLayer[T](p.grid)
	l.Clear(p.initial)
	return l
}

// Put returns a layer to the pool. Layers of a different grid are dropped.
func (p *LayerPool[T]) Put(l *CellLayer[T]) {
	if l == nil || l.grid.Size() != p.grid.Size() || l.grid.Type != p.grid.Type {
		return
	}
	p.pool.Put(l)
}
