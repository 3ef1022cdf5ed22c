package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
	"github.com/katalvlaran/lvpath/pathsearch"
)

const (
	plain locomotor.TerrainType = iota
	rough
	water
)

var mixedMap = []string{
	"......",
	".~~#..",
	".~.#..",
	"..~#~.",
	"....~.",
	"###...",
}

// parseMap builds a rectangular Conn8 map from rows: '.' plain (100),
// '~' rough (150), '#' water (impassable), and a tank bound to it.
func parseMap(t testing.TB, rows ...string) (*grid.Grid, locomotor.Locomotor) {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows), grid.DefaultOptions())
	require.NoError(t, err)
	terrain, err := locomotor.NewTerrainMap(g, plain)
	require.NoError(t, err)
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '~':
				terrain.Set(grid.CPos{X: x, Y: y}, rough)
			case '#':
				terrain.Set(grid.CPos{X: x, Y: y}, water)
			}
		}
	}
	return g, tankOn(t, terrain)
}

func tankOn(t testing.TB, terrain *locomotor.TerrainMap) locomotor.Locomotor {
	t.Helper()
	tank, err := locomotor.New(locomotor.Info{
		Name:         "tank",
		TerrainCosts: map[locomotor.TerrainType]int{plain: 100, rough: 150},
	}, terrain, nil)
	require.NoError(t, err)
	return tank
}

// twoWalls is the 128×128 map with column 50 impassable above row 100 and
// column 100 impassable below row 50.
func twoWalls(t testing.TB) (*grid.Grid, locomotor.Locomotor) {
	t.Helper()
	g := grid.MustNew(128, 128, grid.DefaultOptions())
	terrain, err := locomotor.NewTerrainMap(g, plain)
	require.NoError(t, err)
	for y := 0; y < 128; y++ {
		if y < 100 {
			terrain.Set(grid.CPos{X: 50, Y: y}, water)
		}
		if y > 50 {
			terrain.Set(grid.CPos{X: 100, Y: y}, water)
		}
	}
	return g, tankOn(t, terrain)
}

// oracle computes exact forward costs from src by repeated relaxation.
func oracle(g *grid.Grid, m locomotor.CostModel, src grid.CPos) map[grid.CPos]int {
	dist := map[grid.CPos]int{src: 0}
	cells := g.Cells()
	for changed := true; changed; {
		changed = false
		for _, c := range cells {
			dc, ok := dist[c]
			if !ok || m.MovementCost(c) == locomotor.CostUnreachable {
				continue
			}
			for _, d := range g.Neighbors() {
				n := c.Add(d)
				if !g.Contains(n) || !m.CanEnter(n, locomotor.NoActor, locomotor.NoActor, locomotor.CellConditionNone) {
					continue
				}
				step := m.MovementCost(n)
				if d.IsDiagonal() {
					step = locomotor.MultiplyBySqrtTwo(step)
				}
				if old, seen := dist[n]; !seen || dc+step < old {
					dist[n] = dc + step
					changed = true
				}
			}
		}
	}
	return dist
}

// searches builds the forward and reverse searches of one query.
func searches(t testing.TB, g *grid.Grid, m locomotor.CostModel, from, to grid.CPos, opts ...pathsearch.Option) (*pathsearch.Search, *pathsearch.Search) {
	t.Helper()
	fwd, err := pathsearch.FromPoint(g, m, 0, from, to, opts...)
	require.NoError(t, err)
	rev, err := pathsearch.FromPoint(g, m, 0, to, from, append(opts, pathsearch.InReverse())...)
	require.NoError(t, err)
	return fwd, rev
}

// stepper returns a plain-cost StepCost for pricing routes.
func stepper(t testing.TB, g *grid.Grid, m locomotor.CostModel) func(grid.CPos, grid.CVec) int {
	t.Helper()
	s, err := pathsearch.FromPoint(g, m, 0, grid.CPos{}, grid.CPos{})
	require.NoError(t, err)
	return s.StepCost
}
