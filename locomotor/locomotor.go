package locomotor

import (
	"fmt"

	"github.com/katalvlaran/lvpath/grid"
)

// Locomotor is the engine's CostModel: a unit type's movement profile bound to
// a terrain snapshot and, optionally, an occupancy snapshot. It is a small
// value; copying it shares the underlying read-only tables.
type Locomotor struct {
	info    Info
	terrain *TerrainMap
	actors  *ActorMap
	costs   *[256]int
	minCost int
}

// New binds info to the given snapshots. actors may be nil for terrain-only queries.
// Returns ErrNilGrid for a nil terrain map, ErrGridMismatch when the snapshots
// cover different grids and ErrNegativeCost for negative terrain costs.
// Complexity: O(len(info.TerrainCosts)).
func New(info Info, terrain *TerrainMap, actors *ActorMap) (Locomotor, error) {
	if terrain == nil {
		return Locomotor{}, ErrNilGrid
	}
	if actors != nil && actors.Grid() != terrain.Grid() {
		return Locomotor{}, ErrGridMismatch
	}

	costs := new([256]int)
	for i := range costs {
		costs[i] = CostUnreachable
	}
	minCost := CostUnreachable
	for tt, c := range info.TerrainCosts {
		if c < 0 {
			return Locomotor{}, fmt.Errorf("%w: %s terrain %d cost=%d", ErrNegativeCost, info.Name, tt, c)
		}
		if c > CostUnreachable {
			c = CostUnreachable
		}
		costs[tt] = c
		if c < minCost {
			minCost = c
		}
	}

	return Locomotor{
		info:    info,
		terrain: terrain,
		actors:  actors,
		costs:   costs,
		minCost: minCost,
	}, nil
}

// Info returns the bound movement profile.
func (l Locomotor) Info() Info { return l.info }

// Grid returns the grid of the bound snapshots.
func (l Locomotor) Grid() *grid.Grid { return l.terrain.Grid() }

// WithActors returns a copy of l bound to another occupancy snapshot of the same grid.
func (l Locomotor) WithActors(actors *ActorMap) (Locomotor, error) {
	if actors != nil && actors.Grid() != l.terrain.Grid() {
		return Locomotor{}, ErrGridMismatch
	}
	l.actors = actors
	return l, nil
}

// MovementCost returns the terrain cost of entering cell.
func (l Locomotor) MovementCost(cell grid.CPos) int {
	if !l.terrain.Grid().Contains(cell) {
		return CostUnreachable
	}
	return l.costs[l.terrain.At(cell)]
}

// MinMovementCost returns the cheapest terrain cost in the profile,
// or CostUnreachable if the unit can enter no terrain at all.
func (l Locomotor) MinMovementCost() int { return l.minCost }

// CanEnter reports whether self may occupy cell under conds.
func (l Locomotor) CanEnter(cell grid.CPos, self, ignored ActorID, conds CellConditions) bool {
	if l.MovementCost(cell) == CostUnreachable {
		return false
	}
	if l.actors == nil {
		return true
	}
	for _, o := range l.actors.Occupants(cell) {
		if l.blocks(o, self, ignored, conds) {
			return false
		}
	}
	return true
}

// blocks decides whether a single occupant prevents self from entering.
func (l Locomotor) blocks(o Occupant, self, ignored ActorID, conds CellConditions) bool {
	if o.ID == self || (ignored != NoActor && o.ID == ignored) {
		return false
	}
	if o.CrushClass != "" && l.info.Crushes.Has(o.CrushClass) {
		return false
	}
	switch o.Kind {
	case Immovable:
		return true
	case Stationary:
		return conds.Has(CellConditionTransientActors)
	case Moving:
		return conds.Has(CellConditionBlockedByMovers)
	default:
		return true
	}
}

// Funcs adapts closures to CostModel. A nil CanEnterFunc allows every cell
// whose movement cost is finite; MinCost feeds MinCostProvider.
type Funcs struct {
	CanEnterFunc     func(cell grid.CPos, self, ignored ActorID, conds CellConditions) bool
	MovementCostFunc func(cell grid.CPos) int
	MinCost          int
}

// CanEnter implements CostModel.
func (f Funcs) CanEnter(cell grid.CPos, self, ignored ActorID, conds CellConditions) bool {
	if f.MovementCost(cell) == CostUnreachable {
		return false
	}
	if f.CanEnterFunc == nil {
		return true
	}
	return f.CanEnterFunc(cell, self, ignored, conds)
}

// MovementCost implements CostModel.
func (f Funcs) MovementCost(cell grid.CPos) int {
	if f.MovementCostFunc == nil {
		return CostUnreachable
	}
	return f.MovementCostFunc(cell)
}

// MinMovementCost implements MinCostProvider.
func (f Funcs) MinMovementCost() int { return f.MinCost }

var (
	_ CostModel       = Locomotor{}
	_ MinCostProvider = Locomotor{}
	_ CostModel       = Funcs{}
	_ MinCostProvider = Funcs{}
)
