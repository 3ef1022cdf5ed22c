// Package frontier is the deterministic min-priority queue of open cells used
// by path searches.
//
// Ordering:
//
//   - Items are ordered by EstimatedTotal ascending.
//   - Ties are broken by insertion sequence: of two items with equal estimate,
//     the one pushed first is popped first. The sequence counter belongs to a
//     single Frontier, so the order depends only on the sequence of Push calls,
//     never on hash iteration, pointers or time.
//
// Decrease-key:
//
//   - The frontier does not support in-place updates. Callers push a duplicate
//     with the lower estimate and discard stale entries when they are popped
//     (the "lazy decrease-key" strategy).
//
// Complexity:
//
//   - Push, PopMin: O(log N), Peek, Len: O(1), N ≤ number of pushes.
package frontier
