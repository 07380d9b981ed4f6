package vector

// Vector2d represents a 2D point or direction.
type Vector2d struct {
	X, Y Scalar
}

// 2D vector constants.
var (
	Vector2dZero = Vector2d{0, 0}
	Vector2dI    = Vector2d{1, 0}
	Vector2dJ    = Vector2d{0, 1}
	Vector2dOne  = Vector2d{1, 1}
)

// NewVector2d creates a new 2D vector with the given components
func NewVector2d(x, y Scalar) Vector2d {
	return Vector2d{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors
func (v Vector2d) Add(o Vector2d) Vector2d { return Vector2d{v.X + o.X, v.Y + o.Y} }

// Subtract returns the component-wise difference between two vectors
func (v Vector2d) Subtract(o Vector2d) Vector2d { return Vector2d{v.X - o.X, v.Y - o.Y} }

// Negate returns the vector pointing the other way
func (v Vector2d) Negate() Vector2d { return Vector2d{-v.X, -v.Y} }

// Scale multiplies both components by a scalar
func (v Vector2d) Scale(s Scalar) Vector2d { return Vector2d{v.X * s, v.Y * s} }

// Divide divides both components by a scalar. Dividing by zero is not guarded.
func (v Vector2d) Divide(s Scalar) Vector2d { return Vector2d{v.X / s, v.Y / s} }

func (v *Vector2d) AddAssign(o Vector2d)      { *v = v.Add(o) }
func (v *Vector2d) SubtractAssign(o Vector2d) { *v = v.Subtract(o) }
func (v *Vector2d) ScaleAssign(s Scalar)      { *v = v.Scale(s) }
func (v *Vector2d) DivideAssign(s Scalar)     { *v = v.Divide(s) }

// Equals reports whether both components match within CompareAccuracy.
func (v Vector2d) Equals(o Vector2d) bool { return v.EqualsWithin(o, CompareAccuracy) }

// EqualsWithin reports whether both components differ by at most eps.
func (v Vector2d) EqualsWithin(o Vector2d, eps Scalar) bool {
	return approxEqual(v.X, o.X, eps) && approxEqual(v.Y, o.Y, eps)
}

// Dot returns the dot product of two vectors
func (v Vector2d) Dot(o Vector2d) Scalar { return v.X*o.X + v.Y*o.Y }

// Rotate rotates the vector about the origin by theta. Positive theta is
// counter-clockwise.
func (v Vector2d) Rotate(theta Scalar) Vector2d {
	s, c := sincos(theta)
	return Vector2d{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Project returns the component of v parallel to axis.
func (v Vector2d) Project(axis Vector2d) Vector2d {
	u := axis.Unit()
	return u.Scale(v.Dot(u))
}

// Lerp interpolates linearly towards end. t is not clamped, so values
// outside [0, 1] extrapolate.
func (v Vector2d) Lerp(end Vector2d, t Scalar) Vector2d {
	return v.Add(end.Subtract(v).Scale(t))
}

// AngleTo returns the unsigned angle between two vectors, in [0, π].
func (v Vector2d) AngleTo(o Vector2d) Scalar {
	return acos(clamp(v.Dot(o)/(v.Magnitude()*o.Magnitude()), -1, 1))
}

// Magnitude returns the Euclidean norm
func (v Vector2d) Magnitude() Scalar { return sqrt(v.Dot(v)) }

// Unit returns a unit vector in the same direction. The zero vector yields NaN components.
func (v Vector2d) Unit() Vector2d { return v.Divide(v.Magnitude()) }

// Theta returns the polar angle atan2(y, x), in [-π, π]. A y of -0 on the
// negative x axis gives -π.
func (v Vector2d) Theta() Scalar { return atan2(v.Y, v.X) }

// IsFinite reports whether no component is NaN or infinite.
func (v Vector2d) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }
