package pathsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
)

const (
	plain locomotor.TerrainType = iota
	rough
	water
)

// parseMap builds a rectangular Conn8 map from rows: '.' plain (100),
// '~' rough (150), '#' water (impassable), and a tank bound to it.
func parseMap(t testing.TB, rows ...string) (*grid.Grid, locomotor.Locomotor) {
	t.Helper()
	return parseMapWith(t, grid.DefaultOptions(), rows...)
}

func parseMapWith(t testing.TB, opts grid.Options, rows ...string) (*grid.Grid, locomotor.Locomotor) {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows), opts)
	require.NoError(t, err)

	terrain, err := locomotor.NewTerrainMap(g, plain)
	require.NoError(t, err)
	for y, row := range rows {
		for x, ch := range row {
			c := g.ToCPos(grid.MPos{U: x, V: y})
			switch ch {
			case '~':
				terrain.Set(c, rough)
			case '#':
				terrain.Set(c, water)
			}
		}
	}

	tank, err := locomotor.New(locomotor.Info{
		Name:         "tank",
		TerrainCosts: map[locomotor.TerrainType]int{plain: 100, rough: 150},
	}, terrain, nil)
	require.NoError(t, err)
	return g, tank
}

// oracle computes exact forward costs from src to every cell by repeated
// relaxation until nothing changes. It shares no code with Search.
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
				if d.X != 0 && d.Y != 0 {
					step = step * 46341 / 32768
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

// isContiguous reports whether consecutive route cells are neighbors.
func isContiguous(route []grid.CPos) bool {
	for i := 1; i < len(route); i++ {
		d := route[i].Sub(route[i-1])
		if d == (grid.CVec{}) || d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			return false
		}
	}
	return true
}
