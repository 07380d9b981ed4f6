//go:build vector_float32

package vector

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar is the floating-point type shared by every vector and quaternion.
//
// The vector_float32 build tag selects float32, for targets where double
// precision is slow or unavailable.
type Scalar = float32

const (
	maxScalar Scalar = math.MaxFloat32

	nearOne Scalar = 1e-5

	slerpLerpThreshold Scalar = 0.9995
)

func sqrt(x Scalar) Scalar     { return math32.Sqrt(x) }
func sin(x Scalar) Scalar      { return math32.Sin(x) }
func acos(x Scalar) Scalar     { return math32.Acos(x) }
func atan2(y, x Scalar) Scalar { return math32.Atan2(y, x) }
func abs(x Scalar) Scalar      { return math32.Abs(x) }

func sincos(x Scalar) (s, c Scalar) { return math32.Sincos(x) }

func isFinite(x Scalar) bool { return !math32.IsNaN(x) && !math32.IsInf(x, 0) }
