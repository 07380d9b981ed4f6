package vector

// Vector3d represents a 3D point or direction
type Vector3d struct {
	X, Y, Z Scalar
}

// 3D vector constants.
//
// Vector3dMax and Vector3dMin are bounding-box accumulator seeds: start a
// running minimum at Vector3dMax and a running maximum at Vector3dMin so
// the first real sample always replaces them.
var (
	Vector3dZero = Vector3d{0, 0, 0}
	Vector3dI    = Vector3d{1, 0, 0}
	Vector3dJ    = Vector3d{0, 1, 0}
	Vector3dK    = Vector3d{0, 0, 1}
	Vector3dOne  = Vector3d{1, 1, 1}
	Vector3dMax  = Vector3d{maxScalar, maxScalar, maxScalar}
	Vector3dMin  = Vector3d{-maxScalar, -maxScalar, -maxScalar}
)

// NewVector3d creates a new 3D vector with the given components
func NewVector3d(x, y, z Scalar) Vector3d {
	return Vector3d{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3d) Add(o Vector3d) Vector3d {
	return Vector3d{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Subtract returns the difference between two vectors
func (v Vector3d) Subtract(o Vector3d) Vector3d {
	return Vector3d{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// Negate returns the vector pointing the other way
func (v Vector3d) Negate() Vector3d { return Vector3d{-v.X, -v.Y, -v.Z} }

// Scale multiplies all components of the vector by a scalar
func (v Vector3d) Scale(s Scalar) Vector3d {
	return Vector3d{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Divide divides all components by a scalar. Dividing by zero is not guarded.
func (v Vector3d) Divide(s Scalar) Vector3d {
	return Vector3d{
		X: v.X / s,
		Y: v.Y / s,
		Z: v.Z / s,
	}
}

func (v *Vector3d) AddAssign(o Vector3d)      { *v = v.Add(o) }
func (v *Vector3d) SubtractAssign(o Vector3d) { *v = v.Subtract(o) }
func (v *Vector3d) ScaleAssign(s Scalar)      { *v = v.Scale(s) }
func (v *Vector3d) DivideAssign(s Scalar)     { *v = v.Divide(s) }

// Equals reports whether all components match within CompareAccuracy.
func (v Vector3d) Equals(o Vector3d) bool { return v.EqualsWithin(o, CompareAccuracy) }

// EqualsWithin reports whether every component differs by at most eps.
func (v Vector3d) EqualsWithin(o Vector3d, eps Scalar) bool {
	return approxEqual(v.X, o.X, eps) &&
		approxEqual(v.Y, o.Y, eps) &&
		approxEqual(v.Z, o.Z, eps)
}

// Dot returns the dot product of two vectors
func (v Vector3d) Dot(o Vector3d) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product of two vectors
func (v Vector3d) Cross(o Vector3d) Vector3d {
	return Vector3d{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Project returns the component of v parallel to axis.
func (v Vector3d) Project(axis Vector3d) Vector3d {
	u := axis.Unit()
	return u.Scale(v.Dot(u))
}

// Lerp interpolates linearly towards end. t is not clamped.
func (v Vector3d) Lerp(end Vector3d, t Scalar) Vector3d {
	return v.Add(end.Subtract(v).Scale(t))
}

// Rotate rotates v about axis by theta using Rodrigues' formula. Positive
// theta is counter-clockwise when axis points at the observer. axis need not
// be unit length but must not be zero.
func (v Vector3d) Rotate(axis Vector3d, theta Scalar) Vector3d {
	k := axis.Unit()
	s, c := sincos(theta)
	return v.Scale(c).
		Add(k.Cross(v).Scale(s)).
		Add(k.Scale(k.Dot(v) * (1 - c)))
}

// RotateBy rotates v by the unit quaternion q, computing q·v·q*.
// A non-unit q also scales the result.
func (v Vector3d) RotateBy(q Quaternion) Vector3d {
	p := q.Mul(Quaternion{X: v.X, Y: v.Y, Z: v.Z}).Mul(q.Conjugate())
	return Vector3d{X: p.X, Y: p.Y, Z: p.Z}
}

// AngleTo returns the unsigned angle between two vectors, in [0, π].
func (v Vector3d) AngleTo(o Vector3d) Scalar {
	return acos(clamp(v.Dot(o)/(v.Magnitude()*o.Magnitude()), -1, 1))
}

// QuaternionTo returns the shortest rotation taking v onto o.
func (v Vector3d) QuaternionTo(o Vector3d) Quaternion {
	return RotationBetween(v, o)
}

// RotationAroundAxis returns the rotation by theta about v.
func (v Vector3d) RotationAroundAxis(theta Scalar) Quaternion {
	return FromAxisAngle(v, theta)
}

// Magnitude returns the vector's Euclidean norm
func (v Vector3d) Magnitude() Scalar { return sqrt(v.Dot(v)) }

// Unit returns the normalized vector. The zero vector yields NaN components.
func (v Vector3d) Unit() Vector3d { return v.Divide(v.Magnitude()) }

// Theta returns the azimuth of the (x, y) projection, in [-π, π]. As with
// Vector2d, y = -0 on the negative x axis gives -π.
func (v Vector3d) Theta() Scalar { return atan2(v.Y, v.X) }

// Rho returns the elevation out of the (x, y) plane, in [-π/2, π/2].
func (v Vector3d) Rho() Scalar { return atan2(v.Z, sqrt(v.X*v.X+v.Y*v.Y)) }

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3d) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Min2 returns the component-wise minimum of a and b.
func Min2(a, b Vector3d) Vector3d {
	return Vector3d{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		Z: min(a.Z, b.Z),
	}
}

// Max2 returns the component-wise maximum of a and b.
func Max2(a, b Vector3d) Vector3d {
	return Vector3d{
		X: max(a.X, b.X),
		Y: max(a.Y, b.Y),
		Z: max(a.Z, b.Z),
	}
}
