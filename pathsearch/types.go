package pathsearch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
)

// Sentinel errors returned by the search constructors.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("pathsearch: grid is nil")

	// ErrNilCostModel indicates a nil locomotor.CostModel.
	ErrNilCostModel = errors.New("pathsearch: cost model is nil")

	// ErrTargetOutOfBounds indicates a target cell outside the map.
	ErrTargetOutOfBounds = errors.New("pathsearch: target cell outside map")

	// ErrNoSeeds indicates that no seed cell lies inside the map.
	ErrNoSeeds = errors.New("pathsearch: no seed cells inside map")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")
)

// State is the lifecycle phase of a Search.
type State int

const (
	// Seeded: initial cells are open, nothing expanded yet.
	Seeded State = iota
	// Expanding: at least one cell was expanded.
	Expanding
	// Found: a target cell was expanded.
	Found
	// Exhausted: the frontier is empty and no target was expanded.
	Exhausted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Seeded:
		return "Seeded"
	case Expanding:
		return "Expanding"
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CellStatus is the per-search status of one cell.
type CellStatus uint8

const (
	// Unvisited cells have never been reached.
	Unvisited CellStatus = iota
	// Open cells are on the frontier.
	Open
	// Closed cells have their final cost for this search.
	Closed
)

// CellInfo is the node-table entry for one cell.
// Parent equals the cell itself for seeds; it is meaningless while Unvisited.
type CellInfo struct {
	Status         CellStatus
	CostSoFar      int
	EstimatedTotal int
	Parent         grid.CPos
}

var unvisited = CellInfo{
	Status:         Unvisited,
	CostSoFar:      locomotor.CostUnreachable,
	EstimatedTotal: locomotor.CostUnreachable,
}

// NewLayerPool returns a node-table pool for searches over g.
// Share one pool per grid between searches; never between grids.
func NewLayerPool(g *grid.Grid) *grid.LayerPool[CellInfo] {
	return grid.NewLayerPool[CellInfo](g, unvisited)
}

// Options configures a Search.
//
//	CheckForBlocked stationary occupants refuse entry (CellConditionTransientActors).
//	IgnoredActor    this actor never blocks (e.g. the building being entered).
//	CustomCost      extra cost of entering a cell; CostUnreachable forbids it.
//	CustomBlocker   cells for which it returns true are never opened.
//	LaneBias        +1 per step against the row/column lane direction.
//	Heuristic       estimate toward the target; nil selects DefaultEstimator.
//	HeuristicWeight percent applied to the heuristic, at least 100.
//	Reverse         the search runs from the destination toward the source.
//	TargetPredicate overrides "cell == target" for Found detection.
//	Pool            node-table pool; nil allocates a fresh table.
type Options struct {
	CheckForBlocked bool
	IgnoredActor    locomotor.ActorID
	CustomCost      func(grid.CPos) int
	CustomBlocker   func(grid.CPos) bool
	LaneBias        bool
	Heuristic       Heuristic
	HeuristicWeight int
	Reverse         bool
	TargetPredicate func(grid.CPos) bool
	Pool            *grid.LayerPool[CellInfo]

	// OnExpand is called when a cell is closed, with its final cost.
	OnExpand func(cell grid.CPos, costSoFar int)

	// OnRelax is called when a cell is opened or its cost improves.
	OnRelax func(from, to grid.CPos, costSoFar, estimatedRemaining int)

	// internal error recorded during option parsing
	err error
}

// Option configures a Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - no occupancy blocking beyond immovable actors
//   - no custom cost, blocker or lane bias
//   - DefaultEstimator at weight 100 (optimal)
//   - forward direction and no-op hooks.
func DefaultOptions() Options {
	return Options{
		HeuristicWeight: 100,
		OnExpand:        func(grid.CPos, int) {},
		OnRelax:         func(grid.CPos, grid.CPos, int, int) {},
	}
}

// WithCheckForBlocked makes stationary units block entry when enabled.
func WithCheckForBlocked(enabled bool) Option {
	return func(o *Options) { o.CheckForBlocked = enabled }
}

// WithIgnoredActor excludes one actor from blocking checks.
func WithIgnoredActor(id locomotor.ActorID) Option {
	return func(o *Options) { o.IgnoredActor = id }
}

// WithCustomCost adds fn(cell) to the cost of entering each cell.
func WithCustomCost(fn func(grid.CPos) int) Option {
	return func(o *Options) { o.CustomCost = fn }
}

// WithCustomBlocker forbids every cell for which fn returns true.
func WithCustomBlocker(fn func(grid.CPos) bool) Option {
	return func(o *Options) { o.CustomBlocker = fn }
}

// WithLaneBias enables or disables the lane bias.
func WithLaneBias(enabled bool) Option {
	return func(o *Options) { o.LaneBias = enabled }
}

// WithHeuristic replaces the default estimator. h must be admissible and
// consistent for optimal results; it may return CostUnreachable to prune a cell.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithHeuristicWeight scales the heuristic by percent/100.
//
//	percent == 100: optimal A*
//	percent  > 100: faster, route at most percent/100 times the optimum
//	percent  < 100: invalid option → ErrOptionViolation
func WithHeuristicWeight(percent int) Option {
	return func(o *Options) {
		if percent < 100 {
			o.err = fmt.Errorf("%w: heuristic weight %d%% below 100%%", ErrOptionViolation, percent)
			return
		}
		o.HeuristicWeight = percent
	}
}

// InReverse marks the search as running from destination to source.
func InReverse() Option {
	return func(o *Options) { o.Reverse = true }
}

// WithTargetPredicate replaces the target equality test.
func WithTargetPredicate(fn func(grid.CPos) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.TargetPredicate = fn
		}
	}
}

// WithLayerPool reuses node tables from pool.
func WithLayerPool(pool *grid.LayerPool[CellInfo]) Option {
	return func(o *Options) { o.Pool = pool }
}

// WithOnExpand registers a callback run when a cell is closed.
func WithOnExpand(fn func(cell grid.CPos, costSoFar int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run when a cell is opened or improved.
func WithOnRelax(fn func(from, to grid.CPos, costSoFar, estimatedRemaining int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
