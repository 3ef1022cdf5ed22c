// Package pathsearch implements the single-direction A* search over a grid
// used by the path finder of a lockstep RTS simulation.
//
// Overview:
//
//   - A Search owns a per-cell node table (status, cost so far, estimated
//     total, parent) and a deterministic priority frontier.
//   - It is seeded with one or more cells at zero cost and driven one
//     expansion at a time (Expand), so a coordinator can interleave two
//     searches for bidirectional routing.
//   - States: Seeded → Expanding → Found | Exhausted. Exhausted is the normal
//     "no path" outcome on walled-off maps, not an error.
//
// Costs:
//
//   - Entering cell n from its neighbor in direction d costs the terrain cost
//     of n (scaled by √2 for diagonal moves), plus the optional custom cost of
//     n, plus the optional lane bias. All arithmetic is integer and saturates at
//     locomotor.CostUnreachable.
//   - Cells whose terrain (or custom) cost is unreachable are closed without
//     being expanded. Cells the cost model refuses (CanEnter) are never opened.
//   - WithCheckForBlocked makes stationary occupants refuse entry, for
//     "can the unit reach this cell right now" queries.
//
// Reverse searches:
//
//   - A search created with InReverse is seeded at the destination and
//     heads for the source. It evaluates every edge in its forward orientation
//     (the cost of moving from the neighbor into the current cell), so the
//     cost it assigns a route equals the cost a forward search would assign.
//
// Determinism:
//
//   - Neighbors are enumerated in grid.Directions order, the frontier breaks
//     ties by insertion order, and no map iteration influences expansion. Two
//     processes given the same snapshots and seeds expand the same cells in the
//     same order.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilCostModel: missing collaborators.
//   - ErrTargetOutOfBounds: the heuristic target lies outside the map.
//   - ErrNoSeeds: no seed cell inside the map.
//   - ErrOptionViolation: an invalid Option value (recorded, reported by the constructor).
//
// Complexity:
//
//   - Time:  O(C log C) for C cells touched; each cell is closed at most once.
//   - Space: O(W×H) for the node table (reusable through a grid.LayerPool).
package pathsearch
