package vector

import "github.com/golang/geo/s1"

// All angles are in radians unless the name says otherwise.
const (
	Pi    Scalar = 3.1415926535897932384626433832795
	TwoPi Scalar = 2 * Pi
)

// LimitRadRange brings an angle within one turn of [-π, π] back into range.
// It wraps at most once.
func LimitRadRange(rad Scalar) Scalar {
	switch {
	case rad > Pi:
		return rad - TwoPi
	case rad < -Pi:
		return rad + TwoPi
	}
	return rad
}

// LimitDegRange is LimitRadRange for degrees.
func LimitDegRange(deg Scalar) Scalar {
	switch {
	case deg > 180:
		return deg - 360
	case deg < -180:
		return deg + 360
	}
	return deg
}

// DegToRad converts degrees to radians.
func DegToRad(deg Scalar) Scalar {
	return Scalar((s1.Angle(deg) * s1.Degree).Radians())
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad Scalar) Scalar {
	return Scalar((s1.Angle(rad) * s1.Radian).Degrees())
}
