// Package pathfinder turns path searches into routes and serves unit path
// requests for a lockstep simulation.
//
// Entry points:
//
//   - FindPath(search): drive one search to its target and reconstruct the
//     route in source→destination order. An empty route means no path.
//   - FindBidiPath(fromStart, fromEnd): interleave a forward and a reverse
//     search (start side first, always) and join them at the cheapest meeting cell.
//   - Finder: per-world request API with a tick-aged route cache, an optional
//     domain pre-check, the adjacent-cell shortcut and batch requests computed
//     on worker goroutines.
//
// Bidirectional termination:
//
//	After each expansion of a cell p by one search, if p is known (open or
//	closed) to the partner, the candidate g_start(p)+g_end(p) is recorded.
//	The loop stops when the best candidate μ satisfies
//	μ ≤ max(minF_start, minF_end), or when either frontier is exhausted.
//	With admissible, consistent heuristics (weight 100) the joined route
//	costs exactly what FindPath would return. Heavier weights keep the same
//	rule and inherit the weighted bound.
//
// Determinism:
//
//	Every decision depends only on the snapshots, the request fields and
//	the fixed expansion order of pathsearch. Batch requests are computed
//	concurrently on private node tables; cache lookups happen before and
//	cache stores after the parallel phase, both in request order.
//
// Errors:
//
//   - Invalid requests (nil model, cells outside the map, no candidates)
//     are reported as sentinel errors, distinct from "no path" (empty route).
//   - With sanity checks enabled, a malformed route is reported as
//     ErrRouteNotContiguous, ErrRouteOutsideMap or ErrRouteEndpoints.
package pathfinder
