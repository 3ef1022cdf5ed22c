package pathsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
	"github.com/katalvlaran/lvpath/pathsearch"
)

func TestDistance(t *testing.T) {
	a, b := grid.CPos{X: 0, Y: 0}, grid.CPos{X: 3, Y: 5}

	// 3 diagonal steps (141) and 2 straight steps (100).
	assert.Equal(t, 3*141+2*100, pathsearch.Distance(grid.Conn8, 100, a, b))
	assert.Equal(t, 8*100, pathsearch.Distance(grid.Conn4, 100, a, b))
	assert.Equal(t, pathsearch.Distance(grid.Conn8, 100, a, b), pathsearch.Distance(grid.Conn8, 100, b, a))
	assert.Equal(t, 0, pathsearch.Distance(grid.Conn8, 100, b, b))
	assert.Equal(t, 0, pathsearch.Distance(grid.Conn8, 0, a, b))

	// Products beyond 32 bits saturate instead of wrapping.
	far := grid.CPos{X: 3000, Y: 5000}
	assert.Equal(t, 3000*141421+2000*100000, pathsearch.Distance(grid.Conn8, 100000, a, far))
	assert.Equal(t, locomotor.CostUnreachable, pathsearch.Distance(grid.Conn4, 1000000, a, far))
}

func TestMinEstimator(t *testing.T) {
	targets := []grid.CPos{{X: 10, Y: 0}, {X: 0, Y: 2}}
	h := pathsearch.MinEstimator(grid.Conn8, 100, targets)
	targets[0] = grid.CPos{X: 0, Y: 0} // the estimator keeps its own copy

	assert.Equal(t, 200, h(grid.CPos{X: 0, Y: 0}))
	assert.Equal(t, 100, h(grid.CPos{X: 9, Y: 0}))

	none := pathsearch.MinEstimator(grid.Conn8, 100, nil)
	assert.Equal(t, locomotor.CostUnreachable, none(grid.CPos{}))
}

func TestDefaultEstimator(t *testing.T) {
	h := pathsearch.DefaultEstimator(grid.Conn4, 50, grid.CPos{X: 2, Y: 2})
	assert.Equal(t, 200, h(grid.CPos{X: 0, Y: 0}))
	assert.Equal(t, 0, pathsearch.Zero(grid.CPos{X: 7, Y: 7}))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Seeded", pathsearch.Seeded.String())
	assert.Equal(t, "Expanding", pathsearch.Expanding.String())
	assert.Equal(t, "Found", pathsearch.Found.String())
	assert.Equal(t, "Exhausted", pathsearch.Exhausted.String())
	assert.Equal(t, "State(9)", pathsearch.State(9).String())
}
