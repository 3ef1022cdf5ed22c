package pathsearch_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
	"github.com/katalvlaran/lvpath/pathsearch"
)

// ExampleFromPoint routes a tank around two walls.
func ExampleFromPoint() {
	//   .#...
	//   .#.#.
	//   ...#.
	g := grid.MustNew(5, 3, grid.DefaultOptions())
	terrain, _ := locomotor.NewTerrainMap(g, plain)
	for _, c := range []grid.CPos{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}} {
		terrain.Set(c, water)
	}
	tank, _ := locomotor.New(locomotor.Info{
		Name:         "tank",
		TerrainCosts: map[locomotor.TerrainType]int{plain: 100},
	}, terrain, nil)

	from, to := grid.CPos{X: 0, Y: 0}, grid.CPos{X: 4, Y: 0}
	s, err := pathsearch.FromPoint(g, tank, locomotor.NoActor, from, to)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !s.ExpandToTarget() {
		fmt.Println("no path")
		return
	}
	fmt.Println(s.Path(to))
	fmt.Println("cost:", s.Info(to).CostSoFar)

	// Output:
	// [0,0 0,1 1,2 2,1 3,0 4,0]
	// cost: 623
}
