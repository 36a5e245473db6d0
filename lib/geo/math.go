package geo

import "math"

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// PrecisionCompare returns 0 when a and b are within e of each other, and
// otherwise -1 or 1 like cmp.Compare.
func PrecisionCompare(a, b, e float64) int {
	switch {
	case math.Abs(a-b) < e:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// NonNegative clamps v to [0, +Inf). NaN becomes 0.
func NonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

