package locomotor

import "math"

// CostUnreachable marks a cell that can never be entered. Path costs saturate at it.
const CostUnreachable = math.MaxInt32

// AddCost returns a+b, saturating at CostUnreachable.
// Both operands must be non-negative.
func AddCost(a, b int) int {
	if a >= CostUnreachable || b >= CostUnreachable || a > CostUnreachable-b {
		return CostUnreachable
	}
	return a + b
}

// MultiplyBySqrtTwo scales a straight step cost to the diagonal step cost
// using integer arithmetic only (46341/32768 ≈ √2). The product is taken in
// int64 so 32-bit and 64-bit peers agree.
func MultiplyBySqrtTwo(c int) int {
	if c >= CostUnreachable {
		return CostUnreachable
	}
	return ClampCost(int64(c) * 46341 / 32768)
}

// ClampCost narrows a non-negative int64 cost to int, saturating at
// CostUnreachable.
func ClampCost(c int64) int {
	if c >= CostUnreachable {
		return CostUnreachable
	}
	return int(c)
}
