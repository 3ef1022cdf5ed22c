package pathfinder

import (
	"slices"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
	"github.com/katalvlaran/lvpath/pathsearch"
)

// FindPath expands s until a target cell is closed and returns the route in
// source→destination order. For a reverse search the closed target is the
// source. Returns nil when the frontier is exhausted.
func FindPath(s *pathsearch.Search) Route {
	if !s.ExpandToTarget() {
		return nil
	}
	considered := s.Considered()
	path := s.Path(considered[len(considered)-1])
	if s.IsReverse() {
		slices.Reverse(path)
	}
	return Route(path)
}

// FindBidiPath runs fromStart (seeded at the source) and fromEnd (seeded at
// the destination, created with pathsearch.InReverse) one expansion at a time,
// start side first, and returns the route through the cheapest meeting cell.
// Returns nil when the two searches cannot meet, or when fromStart is reverse
// or fromEnd is not: a forward search from the destination prices every step
// the wrong way round.
func FindBidiPath(fromStart, fromEnd *pathsearch.Search) Route {
	if fromStart.IsReverse() || !fromEnd.IsReverse() {
		return nil
	}
	best := locomotor.CostUnreachable
	var meet grid.CPos

	consider := func(p grid.CPos, self, partner *pathsearch.Search) {
		other := partner.Info(p)
		if other.Status == pathsearch.Unvisited {
			return
		}
		if total := locomotor.AddCost(self.Info(p).CostSoFar, other.CostSoFar); total < best {
			best, meet = total, p
		}
	}
	done := func() bool {
		fs, fe := fromStart.MinEstimate(), fromEnd.MinEstimate()
		if fs == locomotor.CostUnreachable || fe == locomotor.CostUnreachable {
			return true
		}
		return best != locomotor.CostUnreachable && best <= max(fs, fe)
	}

	for !done() {
		if p, ok := fromStart.Expand(); ok {
			consider(p, fromStart, fromEnd)
		}
		if done() {
			break
		}
		if p, ok := fromEnd.Expand(); ok {
			consider(p, fromEnd, fromStart)
		}
	}

	if best == locomotor.CostUnreachable {
		return nil
	}
	return join(fromStart.Path(meet), fromEnd.Path(meet))
}

// join concatenates source→meet with the reverse of destination→meet.
func join(head, tail []grid.CPos) Route {
	out := make(Route, 0, len(head)+len(tail)-1)
	out = append(out, head...)
	for i := len(tail) - 2; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
