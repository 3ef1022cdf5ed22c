// Package grid is the read-only view of a discretized map that every
// pathfinding component works against.
//
// What:
//
//   - CPos / CVec: value-typed cell coordinates and offsets, safe as map keys.
//   - Grid: dimensions, cell validity (Contains) and the neighbor rule.
//   - CellLayer[T]: dense per-cell storage indexed through the Grid.
//   - LayerPool[T]: reuse of cleared layers between short-lived searches.
//
// Topologies:
//
//   - Rectangular: a cell is its own map position.
//   - RectangularIsometric: cells are diamonds; map position u=(x-y)/2, v=x+y.
//     Cells with x<y never lie inside the map.
//
// Connectivity:
//
//   - Conn8 (default): N, NE, E, SE, S, SW, W, NW in the fixed order of Directions.
//   - Conn4: N, W, E, S in the fixed order of Orthogonal.
//
// The enumeration order of neighbors is part of the determinism contract:
// every participant of a lockstep session must expand neighbors in the same
// order, so the slices returned by Neighbors are never reordered.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrBadGridType: unknown GridType.
//   - ErrBadConnectivity: unknown Connectivity.
package grid
