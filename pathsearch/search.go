package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/lvpath/frontier"
	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
)

// Search is one incremental A* search. It is not safe for concurrent use.
type Search struct {
	grid   *grid.Grid
	model  locomotor.CostModel
	self   locomotor.ActorID
	target grid.CPos
	conds  locomotor.CellConditions
	opts   Options

	info     *grid.CellLayer[CellInfo]
	open     *frontier.Frontier
	state    State
	released bool
	seeds    []grid.CPos

	maxCost    int
	expanded   int
	considered []grid.CPos
}

// FromPoint creates a search seeded at from and heading for target.
// See FromPoints for errors.
func FromPoint(
	g *grid.Grid,
	model locomotor.CostModel,
	self locomotor.ActorID,
	from, target grid.CPos,
	opts ...Option,
) (*Search, error) {
	return FromPoints(g, model, self, []grid.CPos{from}, target, opts...)
}

// FromPoints creates a search seeded at every in-map cell of froms (zero cost)
// heading for target. Seeds outside the map are skipped silently; duplicates
// are seeded once. A seed the heuristic prunes (CostUnreachable) is accepted
// but never opened, so a search whose seeds are all pruned starts out
// Exhausted instead of failing.
//
// Errors: ErrNilGrid, ErrNilCostModel, ErrOptionViolation,
// ErrTargetOutOfBounds, ErrNoSeeds.
// Complexity: O(W×H) to prepare the node table, O(len(froms) log len(froms)) to seed.
func FromPoints(
	g *grid.Grid,
	model locomotor.CostModel,
	self locomotor.ActorID,
	froms []grid.CPos,
	target grid.CPos,
	opts ...Option,
) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if model == nil {
		return nil, ErrNilCostModel
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Pool != nil && o.Pool.Grid() != g {
		return nil, fmt.Errorf("%w: layer pool belongs to another grid", ErrOptionViolation)
	}
	if !g.Contains(target) {
		return nil, fmt.Errorf("%w: %v", ErrTargetOutOfBounds, target)
	}
	if o.Heuristic == nil {
		o.Heuristic = DefaultEstimator(g.Conn, locomotor.MinMovementCost(model), target)
	}

	s := &Search{
		grid:   g,
		model:  model,
		self:   self,
		target: target,
		conds:  locomotor.CellConditionNone,
		opts:   o,
		open:   frontier.New(),
		state:  Seeded,
	}
	if o.CheckForBlocked {
		s.conds = locomotor.CellConditionTransientActors
	}
	if o.Pool != nil {
		s.info = o.Pool.Get()
	} else {
		s.info = grid.NewCellLayer[CellInfo](g)
		s.info.Clear(unvisited)
	}

	seeded := 0
	for _, c := range froms {
		if !g.Contains(c) {
			continue
		}
		seeded++
		if s.info.Get(c).Status != Unvisited {
			continue
		}
		h := s.opts.Heuristic(c)
		if h == locomotor.CostUnreachable {
			continue
		}
		est := s.weigh(h)
		s.info.Set(c, CellInfo{Status: Open, CostSoFar: 0, EstimatedTotal: est, Parent: c})
		s.open.Push(c, est)
		s.seeds = append(s.seeds, c)
	}
	if seeded == 0 {
		s.Release()
		return nil, ErrNoSeeds
	}

	return s, nil
}

// Grid returns the grid being searched.
func (s *Search) Grid() *grid.Grid { return s.grid }

// Target returns the heuristic target.
func (s *Search) Target() grid.CPos { return s.target }

// Seeds returns the distinct cells the search opened as seeds. Seeds pruned
// by the heuristic are not listed.
func (s *Search) Seeds() []grid.CPos { return s.seeds }

// State returns the lifecycle phase.
func (s *Search) State() State { return s.state }

// IsReverse reports whether the search was created with InReverse.
func (s *Search) IsReverse() bool { return s.opts.Reverse }

// MaxCost returns the largest cost so far assigned to any cell.
func (s *Search) MaxCost() int { return s.maxCost }

// Expanded returns the number of cells closed so far.
func (s *Search) Expanded() int { return s.expanded }

// Considered returns the cells closed so far, in expansion order.
// The slice is shared; callers must not modify it.
func (s *Search) Considered() []grid.CPos { return s.considered }

// IsTarget reports whether reaching cell completes the search.
func (s *Search) IsTarget(cell grid.CPos) bool {
	if s.opts.TargetPredicate != nil {
		return s.opts.TargetPredicate(cell)
	}
	return cell == s.target
}

// Info returns the node-table entry of cell. Cells outside the map report
// Unvisited with unreachable costs.
func (s *Search) Info(cell grid.CPos) CellInfo {
	if !s.grid.Contains(cell) {
		ci := unvisited
		ci.Parent = cell
		return ci
	}
	return s.info.Get(cell)
}

// CanExpand reports whether a non-stale frontier entry remains. Stale
// entries at the top of the frontier are discarded as a side effect.
func (s *Search) CanExpand() bool {
	if s.released {
		return false
	}
	for {
		top, ok := s.open.Peek()
		if !ok {
			if s.state != Found {
				s.state = Exhausted
			}
			return false
		}
		if s.info.Get(top.Cell).Status == Closed {
			s.open.PopMin()
			continue
		}
		return true
	}
}

// MinEstimate returns the smallest estimated total on the frontier, or
// CostUnreachable when nothing can be expanded. Every cell not yet closed has
// a true total cost no lower than this value when the heuristic is admissible.
func (s *Search) MinEstimate() int {
	if !s.CanExpand() {
		return locomotor.CostUnreachable
	}
	top, _ := s.open.Peek()
	return top.EstimatedTotal
}

// Expand closes the cheapest open cell and relaxes its neighbors.
// ok is false when the frontier holds no live entries.
// Complexity: O(k log F) for k neighbors and frontier size F.
func (s *Search) Expand() (cell grid.CPos, ok bool) {
	if !s.CanExpand() {
		return grid.CPos{}, false
	}

	top, _ := s.open.PopMin()
	cur := top.Cell
	ci := s.info.Get(cur)
	ci.Status = Closed
	s.info.Set(cur, ci)

	s.expanded++
	s.considered = append(s.considered, cur)
	if s.state == Seeded {
		s.state = Expanding
	}
	s.opts.OnExpand(cur, ci.CostSoFar)

	if s.IsTarget(cur) {
		s.state = Found
	}
	if s.expandable(cur) {
		s.relax(cur, ci.CostSoFar)
	}

	return cur, true
}

// ExpandToTarget expands until a target cell is closed or the frontier runs
// dry. It reports whether a target was reached.
func (s *Search) ExpandToTarget() bool {
	for s.CanExpand() {
		cur, _ := s.Expand()
		if s.IsTarget(cur) {
			return true
		}
	}
	return false
}

// ExpandAll expands every reachable cell and returns them in expansion order.
func (s *Search) ExpandAll() []grid.CPos {
	var out []grid.CPos
	for s.CanExpand() {
		cur, _ := s.Expand()
		out = append(out, cur)
	}
	return out
}

// Path returns the chain of parents from the seed that reached cell to cell,
// in travel order of this search. It is nil for unvisited cells.
// For a reverse search the result starts at the destination seed.
func (s *Search) Path(cell grid.CPos) []grid.CPos {
	if s.released || !s.grid.Contains(cell) || s.info.Get(cell).Status == Unvisited {
		return nil
	}

	out := []grid.CPos{cell}
	for steps := 0; steps < s.grid.Size(); steps++ {
		parent := s.info.Get(cell).Parent
		if parent == cell {
			break
		}
		out = append(out, parent)
		cell = parent
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Release returns the node table to the pool. The search must not be used
// afterwards except for State, Expanded and MaxCost.
func (s *Search) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.opts.Pool != nil {
		s.opts.Pool.Put(s.info)
	}
	s.info = nil
}

// StepCost returns the cost of moving into cell to along direction d under
// this search's cost options, or CostUnreachable when the move is forbidden.
// Occupancy is not consulted.
func (s *Search) StepCost(to grid.CPos, d grid.CVec) int {
	c := s.model.MovementCost(to)
	if c == locomotor.CostUnreachable {
		return locomotor.CostUnreachable
	}
	if d.IsDiagonal() {
		c = locomotor.MultiplyBySqrtTwo(c)
	}
	if s.opts.CustomCost != nil {
		extra := s.opts.CustomCost(to)
		if extra == locomotor.CostUnreachable {
			return locomotor.CostUnreachable
		}
		c = locomotor.AddCost(c, extra)
	}
	if s.opts.LaneBias {
		c = locomotor.AddCost(c, laneBias(to, d))
	}
	return c
}

// laneBias penalizes moving against the lane of the entered cell: even
// columns flow down, odd columns up; even rows flow right, odd rows left.
func laneBias(to grid.CPos, d grid.CVec) int {
	bias := 0
	ux, uy := to.X&1, to.Y&1
	if (ux == 0 && d.Y < 0) || (ux == 1 && d.Y > 0) {
		bias++
	}
	if (uy == 0 && d.X < 0) || (uy == 1 && d.X > 0) {
		bias++
	}
	return bias
}

// expandable reports whether cur has outgoing edges in this search's direction.
func (s *Search) expandable(cur grid.CPos) bool {
	if !s.leavable(cur) {
		return false
	}
	if s.opts.Reverse {
		// Reverse edges arrive at cur, so cur must be enterable.
		return s.enterable(cur)
	}
	return true
}

// leavable reports whether a unit standing on c can move away from it.
func (s *Search) leavable(c grid.CPos) bool {
	if s.model.MovementCost(c) == locomotor.CostUnreachable {
		return false
	}
	return s.opts.CustomCost == nil || s.opts.CustomCost(c) != locomotor.CostUnreachable
}

func (s *Search) enterable(c grid.CPos) bool {
	if !s.model.CanEnter(c, s.self, s.opts.IgnoredActor, s.conds) {
		return false
	}
	return s.opts.CustomBlocker == nil || !s.opts.CustomBlocker(c)
}

// relax opens or improves every neighbor of cur reachable through one edge.
func (s *Search) relax(cur grid.CPos, costSoFar int) {
	for _, d := range s.grid.Neighbors() {
		next := cur.Add(d)
		if !s.grid.Contains(next) {
			continue
		}
		ni := s.info.Get(next)
		if ni.Status == Closed {
			continue
		}

		var step int
		if s.opts.Reverse {
			// Forward edge next → cur.
			if !s.leavable(next) {
				continue
			}
			step = s.StepCost(cur, d.Neg())
		} else {
			if !s.enterable(next) {
				continue
			}
			step = s.StepCost(next, d)
		}
		if step == locomotor.CostUnreachable {
			continue
		}

		cand := locomotor.AddCost(costSoFar, step)
		if cand == locomotor.CostUnreachable {
			continue
		}
		if ni.Status == Open && cand >= ni.CostSoFar {
			continue
		}

		var remaining int
		if ni.Status == Open {
			remaining = ni.EstimatedTotal - ni.CostSoFar
		} else {
			h := s.opts.Heuristic(next)
			if h == locomotor.CostUnreachable {
				continue
			}
			remaining = s.weigh(h)
		}

		est := locomotor.AddCost(cand, remaining)
		s.info.Set(next, CellInfo{Status: Open, CostSoFar: cand, EstimatedTotal: est, Parent: cur})
		s.open.Push(next, est)
		if cand > s.maxCost {
			s.maxCost = cand
		}
		s.opts.OnRelax(cur, next, cand, remaining)
	}
}

// weigh applies the heuristic weight percentage.
func (s *Search) weigh(h int) int {
	if s.opts.HeuristicWeight == 100 {
		return h
	}
	return locomotor.ClampCost(int64(h) * int64(s.opts.HeuristicWeight) / 100)
}

// RouteCost sums step over consecutive cells of route. It returns
// CostUnreachable if any step is forbidden or the route is not contiguous.
// An empty or single-cell route costs 0.
func RouteCost(route []grid.CPos, step func(to grid.CPos, d grid.CVec) int) int {
	total := 0
	for i := 1; i < len(route); i++ {
		d := route[i].Sub(route[i-1])
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 || d == (grid.CVec{}) {
			return locomotor.CostUnreachable
		}
		c := step(route[i], d)
		if c == locomotor.CostUnreachable {
			return locomotor.CostUnreachable
		}
		total = locomotor.AddCost(total, c)
	}
	return total
}
