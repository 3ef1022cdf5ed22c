package locomotor

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvpath/grid"
)

// Sentinel errors for building locomotors and snapshots.
var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("locomotor: grid is nil")

	// ErrGridMismatch indicates a snapshot built for a different grid.
	ErrGridMismatch = errors.New("locomotor: snapshot grid does not match")

	// ErrNegativeCost indicates a terrain cost below zero in Info.TerrainCosts.
	ErrNegativeCost = errors.New("locomotor: terrain cost must be non-negative")

	// ErrNoActor indicates an occupant registered with the reserved NoActor ID.
	ErrNoActor = errors.New("locomotor: occupant must have a non-zero actor ID")

	// ErrOutsideMap indicates an occupant placed outside the map.
	ErrOutsideMap = errors.New("locomotor: cell outside map")

	// ErrFrozen indicates a mutation of an ActorMap after Freeze.
	ErrFrozen = errors.New("locomotor: actor map is frozen")
)

// ActorID identifies an actor. IDs are assigned deterministically by the
// simulation; NoActor means "none".
type ActorID uint32

// NoActor is the zero ActorID.
const NoActor ActorID = 0

// CellConditions selects which occupants count as blocking in CanEnter.
type CellConditions uint8

const (
	// CellConditionNone: only immovable occupants block.
	CellConditionNone CellConditions = 0
	// CellConditionTransientActors: stationary units block.
	CellConditionTransientActors CellConditions = 1
	// CellConditionBlockedByMovers: moving units block.
	CellConditionBlockedByMovers CellConditions = 2
	// CellConditionAll combines every condition.
	CellConditionAll = CellConditionTransientActors | CellConditionBlockedByMovers
)

// Has reports whether all bits of flag are set.
func (c CellConditions) Has(flag CellConditions) bool { return c&flag == flag }

// OccupantKind classifies an occupant for blocking purposes.
type OccupantKind uint8

const (
	// Immovable occupants (buildings, walls) always block.
	Immovable OccupantKind = iota
	// Stationary units block under CellConditionTransientActors.
	Stationary
	// Moving units block under CellConditionBlockedByMovers.
	Moving
)

// Occupant is one actor standing in a cell.
type Occupant struct {
	ID         ActorID
	Kind       OccupantKind
	CrushClass string // empty: cannot be crushed
}

// TerrainType indexes Info.TerrainCosts. Its meaning is defined by the tileset.
type TerrainType uint8

// Info is the movement profile of one unit type.
//
// TerrainCosts maps terrain to the cost of entering a cell of that terrain;
// terrain types missing from the table are impassable for this unit.
// Crushes lists crush classes this unit drives over; the zero Set means none.
type Info struct {
	Name         string
	TerrainCosts map[TerrainType]int
	Crushes      mapset.Set[string]
}

// CostModel is consumed by path searches. Implementations must be free of
// side effects and must return identical answers for identical inputs for the
// lifetime of a search.
type CostModel interface {
	// CanEnter reports whether self may occupy cell, ignoring the ignored actor.
	// It is false for cells outside the map and for impassable terrain.
	CanEnter(cell grid.CPos, self, ignored ActorID, conds CellConditions) bool

	// MovementCost returns the non-negative terrain cost of entering cell, or
	// CostUnreachable. It never considers occupants.
	MovementCost(cell grid.CPos) int
}

// MinCostProvider is implemented by cost models that know their cheapest
// terrain cost; heuristics scale by it to stay admissible yet informed.
type MinCostProvider interface {
	MinMovementCost() int
}

// MinMovementCost returns m's cheapest terrain cost, or 0 when m does not
// implement MinCostProvider (which degrades A* to Dijkstra, still optimal).
func MinMovementCost(m CostModel) int {
	if p, ok := m.(MinCostProvider); ok {
		if c := p.MinMovementCost(); c > 0 && c < CostUnreachable {
			return c
		}
	}
	return 0
}
