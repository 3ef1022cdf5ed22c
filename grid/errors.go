package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrBadGridType indicates an unknown GridType in Options.
	ErrBadGridType = errors.New("grid: unknown grid type")
	// ErrBadConnectivity indicates an unknown Connectivity in Options.
	ErrBadConnectivity = errors.New("grid: unknown connectivity")
)
