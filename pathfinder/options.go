package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/grid"
)

// DefaultMaxPathAge is the number of ticks a cached route stays valid.
const DefaultMaxPathAge = 50

// Passability answers whether two cells can ever be connected, ignoring
// occupants. *domain.Index implements it.
type Passability interface {
	IsPassable(a, b grid.CPos) bool
}

// Options configures a Finder.
type Options struct {
	// MaxPathAge is the cache lifetime in ticks; 0 disables the cache.
	MaxPathAge int64

	// SanityChecks verifies every computed route before returning it.
	SanityChecks bool

	// Domains rejects requests between disconnected regions without searching.
	// The index must have been built for the locomotor of the requests served.
	Domains Passability

	// HeuristicWeight is forwarded to every search (percent, ≥ 100).
	HeuristicWeight int

	err error
}

// Option configures a Finder via functional arguments.
type Option func(*Options)

// DefaultOptions returns a cache age of DefaultMaxPathAge ticks, optimal
// searches and no sanity checks or domain index.
func DefaultOptions() Options {
	return Options{
		MaxPathAge:      DefaultMaxPathAge,
		HeuristicWeight: 100,
	}
}

// WithMaxPathAge sets the cache lifetime. Negative values are invalid.
func WithMaxPathAge(ticks int64) Option {
	return func(o *Options) {
		if ticks < 0 {
			o.err = fmt.Errorf("%w: max path age %d", ErrOptionViolation, ticks)
			return
		}
		o.MaxPathAge = ticks
	}
}

// WithSanityChecks enables route verification.
func WithSanityChecks() Option {
	return func(o *Options) { o.SanityChecks = true }
}

// WithDomainIndex enables the connectivity pre-check.
func WithDomainIndex(idx Passability) Option {
	return func(o *Options) { o.Domains = idx }
}

// WithHeuristicWeight trades optimality for speed; see pathsearch.WithHeuristicWeight.
func WithHeuristicWeight(percent int) Option {
	return func(o *Options) {
		if percent < 100 {
			o.err = fmt.Errorf("%w: heuristic weight %d%% below 100%%", ErrOptionViolation, percent)
			return
		}
		o.HeuristicWeight = percent
	}
}
