package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/frontier"
	"github.com/katalvlaran/lvpath/grid"
)

// TestFrontier_OrderAndTies verifies estimate ordering and FIFO tie-breaks.
func TestFrontier_OrderAndTies(t *testing.T) {
	f := frontier.New()
	require.True(t, f.IsEmpty())

	f.Push(grid.CPos{X: 5, Y: 5}, 30)
	f.Push(grid.CPos{X: 9, Y: 0}, 10)
	f.Push(grid.CPos{X: 0, Y: 9}, 10)
	f.Push(grid.CPos{X: 1, Y: 1}, 20)
	f.Push(grid.CPos{X: 0, Y: 0}, 10)
	require.Equal(t, 5, f.Len())

	top, ok := f.Peek()
	require.True(t, ok)
	assert.Equal(t, grid.CPos{X: 9, Y: 0}, top.Cell)

	want := []grid.CPos{{X: 9, Y: 0}, {X: 0, Y: 9}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 5, Y: 5}}
	for _, w := range want {
		item, ok := f.PopMin()
		require.True(t, ok)
		assert.Equal(t, w, item.Cell)
	}
	_, ok = f.PopMin()
	assert.False(t, ok)
	assert.True(t, f.IsEmpty())
}

// TestFrontier_Deterministic checks that two frontiers fed the same pushes
// pop in the same order, regardless of how many equal keys they hold.
func TestFrontier_Deterministic(t *testing.T) {
	run := func() []grid.CPos {
		f := frontier.New()
		for i := 0; i < 200; i++ {
			f.Push(grid.CPos{X: (i * 7) % 13, Y: (i * 3) % 11}, i%4)
		}
		out := make([]grid.CPos, 0, 200)
		for !f.IsEmpty() {
			item, _ := f.PopMin()
			out = append(out, item.Cell)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// TestFrontier_DuplicateCells allows the same cell with different estimates.
func TestFrontier_DuplicateCells(t *testing.T) {
	f := frontier.New()
	c := grid.CPos{X: 2, Y: 2}
	f.Push(c, 50)
	f.Push(c, 40)

	item, _ := f.PopMin()
	assert.Equal(t, 40, item.EstimatedTotal)
	item, _ = f.PopMin()
	assert.Equal(t, 50, item.EstimatedTotal)
}
