package pathfinder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/pathsearch"
)

// Route is an ordered cell sequence from source to destination.
// A nil or empty Route means no path was found.
type Route []grid.CPos

// Clone returns a copy that shares no memory with r.
func (r Route) Clone() Route { return slices.Clone(r) }

// Cost prices r with step, usually (*pathsearch.Search).StepCost.
func (r Route) Cost(step func(to grid.CPos, d grid.CVec) int) int {
	return pathsearch.RouteCost(r, step)
}

// CheckRoute verifies that every cell lies in g and that consecutive cells are
// neighbors under g's connectivity.
func CheckRoute(g *grid.Grid, r Route) error {
	for i, c := range r {
		if !g.Contains(c) {
			return fmt.Errorf("%w: cell %d at %s", ErrRouteOutsideMap, i, c)
		}
		if i > 0 && !isNeighbor(g, r[i-1], c) {
			return fmt.Errorf("%w: %s → %s", ErrRouteNotContiguous, r[i-1], c)
		}
	}
	return nil
}

// CheckEndpoints verifies that a non-empty r starts at from and ends at to.
func CheckEndpoints(r Route, from, to grid.CPos) error {
	if len(r) == 0 {
		return nil
	}
	if r[0] != from || r[len(r)-1] != to {
		return fmt.Errorf("%w: got %s…%s, want %s…%s", ErrRouteEndpoints, r[0], r[len(r)-1], from, to)
	}
	return nil
}

func isNeighbor(g *grid.Grid, a, b grid.CPos) bool {
	d := b.Sub(a)
	for _, n := range g.Neighbors() {
		if n == d {
			return true
		}
	}
	return false
}
