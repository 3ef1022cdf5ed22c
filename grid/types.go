// Package grid defines core coordinate types and options
// for the grid subpackage of github.com/katalvlaran/lvpath.
package grid

import "fmt"

// CPos is a cell position in cell space. It is compared and hashed by value.
type CPos struct {
	X, Y int
}

// Add returns the cell reached by moving from c by v.
func (c CPos) Add(v CVec) CPos { return CPos{X: c.X + v.X, Y: c.Y + v.Y} }

// Sub returns the offset from o to c.
func (c CPos) Sub(o CPos) CVec { return CVec{X: c.X - o.X, Y: c.Y - o.Y} }

// String formats the cell as "x,y".
func (c CPos) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// CVec is an offset between two cells.
type CVec struct {
	X, Y int
}

// LengthSquared returns X²+Y². Adjacent cells (including diagonals) are < 3.
func (v CVec) LengthSquared() int { return v.X*v.X + v.Y*v.Y }

// IsDiagonal reports whether both components are non-zero.
func (v CVec) IsDiagonal() bool { return v.X != 0 && v.Y != 0 }

// Neg returns the opposite offset.
func (v CVec) Neg() CVec { return CVec{X: -v.X, Y: -v.Y} }

// MPos is a position in map (storage) space. For Rectangular grids it equals
// the cell position; for RectangularIsometric grids it is the diamond row/column.
type MPos struct {
	U, V int
}

// Directions lists the eight neighbor offsets in their fixed expansion order.
// Do not reorder: expansion order is observable in lockstep results.
var Directions = [8]CVec{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Orthogonal lists the four orthogonal offsets, in the same relative order
// as they appear in Directions.
var Orthogonal = [4]CVec{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// GridType selects the map topology.
type GridType int

const (
	// Rectangular maps store cell (x,y) at map position (x,y).
	Rectangular GridType = iota
	// RectangularIsometric maps store diamond-shaped cells; see CPos.ToMPos.
	RectangularIsometric
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity (the engine default).
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity.
	Conn4
)

// Options contains the tunable parameters of a Grid.
type Options struct {
	// Type chooses the map topology.
	Type GridType
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Type=Rectangular and Conn=Conn8.
func DefaultOptions() Options {
	return Options{
		Type: Rectangular,
		Conn: Conn8,
	}
}

// Grid is the immutable read-only view of map dimensions and adjacency.
// Width and Height are measured in map space (MPos).
type Grid struct {
	Width, Height int
	Type          GridType
	Conn          Connectivity
	neighbors     []CVec
}
