package pathfinder

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/grid"
	"github.com/katalvlaran/lvpath/locomotor"
	"github.com/katalvlaran/lvpath/pathsearch"
)

// cacheSweepThreshold is the cache size above which stale entries are purged on store.
const cacheSweepThreshold = 256

// Request describes one unit path query.
type Request struct {
	Actor           locomotor.ActorID
	Model           locomotor.CostModel
	From, To        grid.CPos
	CheckForBlocked bool
	IgnoredActor    locomotor.ActorID
	LaneBias        bool
}

// Result is the outcome of one batch request.
type Result struct {
	Route Route
	Err   error
}

type cacheKey struct {
	from, to        grid.CPos
	actor, ignored  locomotor.ActorID
	checkForBlocked bool
	laneBias        bool
}

type cachedRoute struct {
	route Route
	tick  int64
}

// Finder serves path requests over one grid. It is safe for concurrent use;
// callers that need lockstep determinism issue requests in a fixed order.
type Finder struct {
	grid *grid.Grid
	opts Options
	pool *grid.LayerPool[pathsearch.CellInfo]

	mu    sync.Mutex
	cache map[cacheKey]cachedRoute
}

// New creates a Finder for g.
// Returns ErrNilGrid or ErrOptionViolation.
func New(g *grid.Grid, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Finder{
		grid:  g,
		opts:  o,
		pool:  pathsearch.NewLayerPool(g),
		cache: make(map[cacheKey]cachedRoute),
	}, nil
}

// Grid returns the grid the finder serves.
func (f *Finder) Grid() *grid.Grid { return f.grid }

// FindUnitPath returns the route for req at simulation tick.
//
// Order of evaluation:
//  1. validation (ErrNilCostModel, ErrSourceOutOfBounds, ErrTargetOutOfBounds)
//  2. From == To: the single-cell route
//  3. a cached route younger than MaxPathAge ticks
//  4. the domain pre-check: disconnected cells yield no route
//  5. an enterable neighboring destination: the two-cell route
//  6. a bidirectional search, cached on success or failure
//
// The cache key is the request minus Model: a route cached under one cost
// model is served to the same actor under another until it ages out. Call
// InvalidateCache after rebinding a unit to a new snapshot when stale
// occupancy must not be reused.
func (f *Finder) FindUnitPath(tick int64, req Request) (Route, error) {
	if route, done, err := f.lookup(tick, req); done {
		return route, err
	}
	route, err := f.search(req)
	if err != nil {
		return nil, err
	}
	f.store(tick, req, route)
	return route, nil
}

// FindUnitPaths resolves reqs with up to workers concurrent searches.
// Cache lookups run first and cache stores last, both in request order, so
// the outcome does not depend on scheduling.
func (f *Finder) FindUnitPaths(tick int64, reqs []Request, workers int) []Result {
	results := make([]Result, len(reqs))
	var pending []int
	for i, req := range reqs {
		route, done, err := f.lookup(tick, req)
		if done {
			results[i] = Result{Route: route, Err: err}
			continue
		}
		pending = append(pending, i)
	}

	var eg errgroup.Group
	eg.SetLimit(max(workers, 1))
	for _, i := range pending {
		i := i
		eg.Go(func() error {
			route, err := f.search(reqs[i])
			results[i] = Result{Route: route, Err: err}
			return nil
		})
	}
	// Workers never fail; per-request errors are kept in results.
	eg.Wait()

	for _, i := range pending {
		if results[i].Err == nil {
			f.store(tick, reqs[i], results[i].Route)
		}
	}
	return results
}

// FindUnitPathToCells returns the cheapest route from req.From to any of
// candidates using one reverse search seeded at every candidate. req.To is
// ignored and nothing is cached.
// Returns ErrNoCandidates when no candidate lies inside the map.
func (f *Finder) FindUnitPathToCells(req Request, candidates []grid.CPos) (Route, error) {
	if req.Model == nil {
		return nil, ErrNilCostModel
	}
	if !f.grid.Contains(req.From) {
		return nil, fmt.Errorf("%w: %s", ErrSourceOutOfBounds, req.From)
	}

	inMap := make([]grid.CPos, 0, len(candidates))
	for _, c := range candidates {
		if f.grid.Contains(c) {
			inMap = append(inMap, c)
		}
	}
	if len(inMap) == 0 {
		return nil, ErrNoCandidates
	}
	if slices.Contains(inMap, req.From) {
		return Route{req.From}, nil
	}

	reachable := make([]grid.CPos, 0, len(inMap))
	for _, c := range inMap {
		if f.opts.Domains == nil || f.opts.Domains.IsPassable(req.From, c) {
			reachable = append(reachable, c)
		}
	}
	if len(reachable) == 0 {
		return nil, nil
	}

	opts := append(f.searchOptions(req), pathsearch.InReverse())
	s, err := pathsearch.FromPoints(f.grid, req.Model, req.Actor, reachable, req.From, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Release()

	route := FindPath(s)
	if f.opts.SanityChecks && len(route) > 0 {
		if err := CheckRoute(f.grid, route); err != nil {
			return nil, err
		}
		if err := CheckEndpoints(route, req.From, route[len(route)-1]); err != nil {
			return nil, err
		}
		if !slices.Contains(reachable, route[len(route)-1]) {
			return nil, fmt.Errorf("%w: %s is not a candidate", ErrRouteEndpoints, route[len(route)-1])
		}
	}
	return route, nil
}

// InvalidateCache drops every cached route, e.g. after terrain changed.
func (f *Finder) InvalidateCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.cache)
}

// CacheLen returns the number of cached routes, stale ones included.
func (f *Finder) CacheLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}

// lookup answers req without searching when it can. done reports whether
// route and err are final.
func (f *Finder) lookup(tick int64, req Request) (route Route, done bool, err error) {
	if req.Model == nil {
		return nil, true, ErrNilCostModel
	}
	if !f.grid.Contains(req.From) {
		return nil, true, fmt.Errorf("%w: %s", ErrSourceOutOfBounds, req.From)
	}
	if !f.grid.Contains(req.To) {
		return nil, true, fmt.Errorf("%w: %s", ErrTargetOutOfBounds, req.To)
	}
	if req.From == req.To {
		return Route{req.From}, true, nil
	}

	if cached, ok := f.cached(tick, keyOf(req)); ok {
		return cached, true, nil
	}

	if f.opts.Domains != nil && !f.opts.Domains.IsPassable(req.From, req.To) {
		return nil, true, nil
	}

	if isNeighbor(f.grid, req.From, req.To) && f.canStep(req) {
		return Route{req.From, req.To}, true, nil
	}
	return nil, false, nil
}

// canStep reports whether the unit may move straight from req.From to req.To.
func (f *Finder) canStep(req Request) bool {
	if req.Model.MovementCost(req.From) == locomotor.CostUnreachable {
		return false
	}
	conds := locomotor.CellConditionNone
	if req.CheckForBlocked {
		conds = locomotor.CellConditionTransientActors
	}
	return req.Model.CanEnter(req.To, req.Actor, req.IgnoredActor, conds)
}

// search runs the bidirectional search for req. It touches no Finder state
// except the layer pool and is safe to run concurrently.
func (f *Finder) search(req Request) (Route, error) {
	opts := f.searchOptions(req)
	fromStart, err := pathsearch.FromPoint(f.grid, req.Model, req.Actor, req.From, req.To, opts...)
	if err != nil {
		return nil, err
	}
	defer fromStart.Release()

	fromEnd, err := pathsearch.FromPoint(f.grid, req.Model, req.Actor, req.To, req.From,
		append(opts, pathsearch.InReverse())...)
	if err != nil {
		return nil, err
	}
	defer fromEnd.Release()

	route := FindBidiPath(fromStart, fromEnd)
	if f.opts.SanityChecks && len(route) > 0 {
		if err := CheckRoute(f.grid, route); err != nil {
			return nil, err
		}
		if err := CheckEndpoints(route, req.From, req.To); err != nil {
			return nil, err
		}
	}
	return route, nil
}

func (f *Finder) searchOptions(req Request) []pathsearch.Option {
	return []pathsearch.Option{
		pathsearch.WithCheckForBlocked(req.CheckForBlocked),
		pathsearch.WithIgnoredActor(req.IgnoredActor),
		pathsearch.WithLaneBias(req.LaneBias),
		pathsearch.WithHeuristicWeight(f.opts.HeuristicWeight),
		pathsearch.WithLayerPool(f.pool),
	}
}

func keyOf(req Request) cacheKey {
	return cacheKey{
		from:            req.From,
		to:              req.To,
		actor:           req.Actor,
		ignored:         req.IgnoredActor,
		checkForBlocked: req.CheckForBlocked,
		laneBias:        req.LaneBias,
	}
}

func (f *Finder) fresh(entry cachedRoute, tick int64) bool {
	age := tick - entry.tick
	return age >= 0 && age <= f.opts.MaxPathAge
}

func (f *Finder) cached(tick int64, key cacheKey) (Route, bool) {
	if f.opts.MaxPathAge == 0 {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.cache[key]
	if !ok {
		return nil, false
	}
	if !f.fresh(entry, tick) {
		delete(f.cache, key)
		return nil, false
	}
	return entry.route.Clone(), true
}

func (f *Finder) store(tick int64, req Request, route Route) {
	if f.opts.MaxPathAge == 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.cache) >= cacheSweepThreshold {
		for k, entry := range f.cache {
			if !f.fresh(entry, tick) {
				delete(f.cache, k)
			}
		}
	}
	f.cache[keyOf(req)] = cachedRoute{route: route.Clone(), tick: tick}
}
