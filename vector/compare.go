package vector

import "golang.org/x/exp/constraints"

// CompareAccuracy is the per-component tolerance used by Equals on every
// type. The default of 0 means exact comparison.
var CompareAccuracy Scalar = 0

func approxEqual(a, b, eps Scalar) bool {
	return absDiff(a, b) <= eps
}

func absDiff[T constraints.Float](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

func clamp[T constraints.Float](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
