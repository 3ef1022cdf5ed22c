// Package domain labels the terrain-connected regions of a map so that path
// requests between cells that can never reach each other (different islands,
// either side of an uncrossable river) are rejected without running a search.
//
// A cell is in a domain when its terrain is passable for the locomotor the
// index was built for. Domains are numbered from 1 in row-major discovery
// order; NoDomain (0) marks impassable cells and cells outside the map.
// Occupancy is deliberately ignored: units move, terrain does not.
//
// Complexity:
//
//   - New:        O(W×H×d) time, O(W×H) memory, d = 4 or 8.
//   - IsPassable: O(1).
package domain
