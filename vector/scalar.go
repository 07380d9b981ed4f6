//go:build !vector_float32

package vector

import "math"

// Scalar is the floating-point type shared by every vector and quaternion.
//
// Default backend is float64. See the package docs for build tags.
type Scalar = float64

const (
	maxScalar Scalar = math.MaxFloat64

	// nearOne is how close a unit dot product must be to ±1 before
	// RotationBetween treats the inputs as parallel or antiparallel.
	nearOne Scalar = 1e-9

	// Above this cosine Slerp blends linearly and renormalizes.
	slerpLerpThreshold Scalar = 0.9995
)

func sqrt(x Scalar) Scalar     { return math.Sqrt(x) }
func sin(x Scalar) Scalar      { return math.Sin(x) }
func acos(x Scalar) Scalar     { return math.Acos(x) }
func atan2(y, x Scalar) Scalar { return math.Atan2(y, x) }
func abs(x Scalar) Scalar      { return math.Abs(x) }

func sincos(x Scalar) (s, c Scalar) { return math.Sincos(x) }

func isFinite(x Scalar) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
