package pathfinder

import "errors"

// Sentinel errors for invalid requests and malformed routes.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("pathfinder: grid is nil")

	// ErrNilCostModel indicates a request without a cost model.
	ErrNilCostModel = errors.New("pathfinder: cost model is nil")

	// ErrSourceOutOfBounds indicates a source cell outside the map.
	ErrSourceOutOfBounds = errors.New("pathfinder: source cell outside map")

	// ErrTargetOutOfBounds indicates a destination cell outside the map.
	ErrTargetOutOfBounds = errors.New("pathfinder: target cell outside map")

	// ErrNoCandidates indicates that no candidate destination lies inside the map.
	ErrNoCandidates = errors.New("pathfinder: no candidate cells inside map")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")

	// ErrRouteNotContiguous indicates consecutive route cells that are not neighbors.
	ErrRouteNotContiguous = errors.New("pathfinder: route is not contiguous")

	// ErrRouteOutsideMap indicates a route cell outside the map.
	ErrRouteOutsideMap = errors.New("pathfinder: route leaves the map")

	// ErrRouteEndpoints indicates a route that does not join the requested cells.
	ErrRouteEndpoints = errors.New("pathfinder: route endpoints do not match request")
)
