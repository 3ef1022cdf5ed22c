// Package lvpath is the deterministic grid pathfinding core of a lockstep
// real-time-strategy simulation: given a map, a unit's movement profile and a
// start and destination, it returns the cheapest route, identically on every
// machine that replays the same orders.
//
// What is inside?
//
//	grid        cell coordinates, rectangular and isometric map topologies,
//	            fixed neighbor order, dense per-cell layers and their pool
//	locomotor   the cost model: terrain cost tables, occupancy snapshots,
//	            blocking rules and saturating integer cost arithmetic
//	frontier    the priority queue with estimate-then-insertion-order ties
//	pathsearch  incremental A* (forward or reverse, one or many seeds)
//	pathfinder  route reconstruction, bidirectional search and the
//	            per-world request API with cache, domain check and batches
//	domain      terrain-connected region labels for early rejection
//	examples    a runnable skirmish-map scenario
//
// Determinism rules:
//
//   - Integer costs only; √2 is 46341/32768.
//   - Neighbors in the fixed order of grid.Directions.
//   - Frontier ties broken by insertion order, never by hash or address.
//   - Snapshots are read-only for the lifetime of a search.
//
// Quick ASCII example (cost 100 per cell, # impassable):
//
//	S . # . T
//	. . # . .
//	. . . . .
//
//	FindBidiPath → S(0,0) (1,1) (2,2) (3,1) T(4,0), cost 4×141 = 564
//
//	go get github.com/katalvlaran/lvpath
package lvpath
