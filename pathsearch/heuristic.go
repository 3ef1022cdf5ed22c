package pathsearch

import (
	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
)

// Heuristic estimates the remaining cost from a cell to the search target.
type Heuristic func(cell grid.CPos) int

// Distance returns the cheapest possible cost between two cells when every
// cell costs cellCost to enter: octile distance for Conn8, Manhattan for Conn4.
// It is admissible and consistent for step costs of at least cellCost
// (straight) and MultiplyBySqrtTwo(cellCost) (diagonal).
// Products are taken in int64 and the result saturates at CostUnreachable.
func Distance(conn grid.Connectivity, cellCost int, a, b grid.CPos) int {
	dx, dy := int64(abs(a.X-b.X)), int64(abs(a.Y-b.Y))
	c := int64(cellCost)
	straight := dx + dy
	if conn == grid.Conn4 {
		return locomotor.ClampCost(c * straight)
	}
	diag := min(dx, dy)
	diagonalCost := int64(locomotor.MultiplyBySqrtTwo(cellCost))
	return locomotor.ClampCost(c*straight + (diagonalCost-2*c)*diag)
}

// DefaultEstimator targets a single fixed cell.
func DefaultEstimator(conn grid.Connectivity, cellCost int, target grid.CPos) Heuristic {
	return func(here grid.CPos) int {
		return Distance(conn, cellCost, here, target)
	}
}

// MinEstimator targets the nearest of several cells. Targets are scanned in
// the given order; the minimum does not depend on that order.
func MinEstimator(conn grid.Connectivity, cellCost int, targets []grid.CPos) Heuristic {
	ts := append([]grid.CPos(nil), targets...)
	return func(here grid.CPos) int {
		best := locomotor.CostUnreachable
		for _, t := range ts {
			if d := Distance(conn, cellCost, here, t); d < best {
				best = d
			}
		}
		return best
	}
}

// Zero is the uninformed heuristic; the search degrades to Dijkstra.
func Zero(grid.CPos) int { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
