package locomotor

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvpath/grid"
)

// TerrainMap is a per-cell terrain snapshot.
type TerrainMap struct {
	layer *grid.CellLayer[TerrainType]
}

// NewTerrainMap returns a terrain map of g with every cell set to fill.
func NewTerrainMap(g *grid.Grid, fill TerrainType) (*TerrainMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	l := grid.NewCellLayer[TerrainType](g)
	l.Clear(fill)
	return &TerrainMap{layer: l}, nil
}

// Grid returns the grid the terrain covers.
func (t *TerrainMap) Grid() *grid.Grid { return t.layer.Grid() }

// Set assigns terrain to a cell. Cells outside the map are ignored.
func (t *TerrainMap) Set(c grid.CPos, tt TerrainType) {
	if t.layer.Grid().Contains(c) {
		t.layer.Set(c, tt)
	}
}

// At returns the terrain of a contained cell.
func (t *TerrainMap) At(c grid.CPos) TerrainType { return t.layer.Get(c) }

// ActorMap records which actors occupy which cells for one simulation tick.
// It is built with Add and then frozen; a frozen map is safe for concurrent reads.
type ActorMap struct {
	grid      *grid.Grid
	occupants *grid.CellLayer[[]Occupant]
	actors    mapset.Set[ActorID]
	frozen    bool
}

// NewActorMap returns an empty occupancy snapshot for g.
func NewActorMap(g *grid.Grid) (*ActorMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &ActorMap{
		grid:      g,
		occupants: grid.NewCellLayer[[]Occupant](g),
		actors:    mapset.New[ActorID](),
	}, nil
}

// Add places an occupant in a cell. An actor may cover several cells.
// Occupants of a cell are kept in insertion order.
func (m *ActorMap) Add(c grid.CPos, o Occupant) error {
	if m.frozen {
		return ErrFrozen
	}
	if o.ID == NoActor {
		return ErrNoActor
	}
	if !m.grid.Contains(c) {
		return fmt.Errorf("%w: %s", ErrOutsideMap, c)
	}
	m.occupants.Set(c, append(m.occupants.Get(c), o))
	m.actors.Put(o.ID)
	return nil
}

// Freeze forbids further mutation and returns m for chaining.
func (m *ActorMap) Freeze() *ActorMap {
	m.frozen = true
	return m
}

// Grid returns the grid the snapshot covers.
func (m *ActorMap) Grid() *grid.Grid { return m.grid }

// HasActor reports whether the actor occupies any cell.
func (m *ActorMap) HasActor(id ActorID) bool { return m.actors.Has(id) }

// Occupants returns the occupants of a contained cell. The slice must not be modified.
func (m *ActorMap) Occupants(c grid.CPos) []Occupant { return m.occupants.Get(c) }
