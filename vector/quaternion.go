package vector

// Quaternion represents w + xi + yj + zk.
//
// Only unit quaternions describe rotations. Nothing here normalizes
// implicitly: call Unit before RotateBy or Slerp if the value may have
// drifted.
type Quaternion struct {
	X, Y, Z, W Scalar
}

// Quaternion constants. QuaternionL is the real unit; it has the same value
// as QuaternionIdentity.
var (
	QuaternionZero     = Quaternion{0, 0, 0, 0}
	QuaternionIdentity = Quaternion{0, 0, 0, 1}
	QuaternionI        = Quaternion{1, 0, 0, 0}
	QuaternionJ        = Quaternion{0, 1, 0, 0}
	QuaternionK        = Quaternion{0, 0, 1, 0}
	QuaternionL        = Quaternion{0, 0, 0, 1}
)

// NewQuaternion creates a quaternion from its imaginary parts and real part.
func NewQuaternion(x, y, z, w Scalar) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// Add returns the component-wise sum of two quaternions
func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// Subtract returns the component-wise difference of two quaternions
func (q Quaternion) Subtract(o Quaternion) Quaternion {
	return Quaternion{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

// Mul returns the Hamilton product q·o. As rotations, o is applied first.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Scale multiplies every component by s
func (q Quaternion) Scale(s Scalar) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Divide divides every component by s. Dividing by zero is not guarded.
func (q Quaternion) Divide(s Scalar) Quaternion {
	return Quaternion{q.X / s, q.Y / s, q.Z / s, q.W / s}
}

// Negate returns -q, the same rotation as q
func (q Quaternion) Negate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, -q.W} }

// AddAssign and the other *Assign methods store the result in q.
func (q *Quaternion) AddAssign(o Quaternion)      { *q = q.Add(o) }
func (q *Quaternion) SubtractAssign(o Quaternion) { *q = q.Subtract(o) }
func (q *Quaternion) MulAssign(o Quaternion)      { *q = q.Mul(o) }
func (q *Quaternion) ScaleAssign(s Scalar)        { *q = q.Scale(s) }
func (q *Quaternion) DivideAssign(s Scalar)       { *q = q.Divide(s) }

// Equals reports whether all components match within CompareAccuracy.
func (q Quaternion) Equals(o Quaternion) bool { return q.EqualsWithin(o, CompareAccuracy) }

// EqualsWithin reports whether every component differs by at most eps.
// q and -q are different values even though they encode the same rotation.
func (q Quaternion) EqualsWithin(o Quaternion, eps Scalar) bool {
	return approxEqual(q.X, o.X, eps) &&
		approxEqual(q.Y, o.Y, eps) &&
		approxEqual(q.Z, o.Z, eps) &&
		approxEqual(q.W, o.W, eps)
}

// Conjugate negates the imaginary part.
func (q Quaternion) Conjugate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, q.W} }

// Norm returns the Euclidean 4-norm.
func (q Quaternion) Norm() Scalar { return sqrt(q.Dot(q)) }

// Unit returns q scaled to norm 1. The zero quaternion yields NaN components.
func (q Quaternion) Unit() Quaternion { return q.Divide(q.Norm()) }

// Distance returns the Euclidean distance between q and o as 4-vectors. It
// is not an angular distance.
func (q Quaternion) Distance(o Quaternion) Scalar { return q.Subtract(o).Norm() }

// Dot returns the 4-component dot product.
func (q Quaternion) Dot(o Quaternion) Scalar {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quaternion) IsFinite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}

// Slerp interpolates along the shorter great arc between the unit
// quaternions q and end. t is not clamped.
func (q Quaternion) Slerp(end Quaternion, t Scalar) Quaternion {
	cosOmega := q.Dot(end)

	// q and -q are the same rotation; flip to take the short way round.
	if cosOmega < 0 {
		end = end.Negate()
		cosOmega = -cosOmega
	}

	// sin(omega) is close to zero here.
	if cosOmega > slerpLerpThreshold {
		return q.Add(end.Subtract(q).Scale(t)).Unit()
	}

	omega := acos(cosOmega)
	sinOmega := sin(omega)
	a := sin((1-t)*omega) / sinOmega
	b := sin(t*omega) / sinOmega
	return q.Scale(a).Add(end.Scale(b))
}

// FromAxisAngle returns the unit quaternion rotating by theta about axis.
// axis is normalized first and must not be zero.
func FromAxisAngle(axis Vector3d, theta Scalar) Quaternion {
	s, c := sincos(theta / 2)
	u := axis.Unit().Scale(s)
	return Quaternion{X: u.X, Y: u.Y, Z: u.Z, W: c}
}

// FromEuler returns the rotation about X by rx, then about Y by ry, then
// about Z by rz, all in the fixed frame.
func FromEuler(rx, ry, rz Scalar) Quaternion {
	qx := FromAxisAngle(Vector3dI, rx)
	qy := FromAxisAngle(Vector3dJ, ry)
	qz := FromAxisAngle(Vector3dK, rz)
	return qz.Mul(qy).Mul(qx)
}

// RotationBetween returns the minimal-angle unit quaternion that takes the
// direction of a onto the direction of b.
//
// Antiparallel inputs have no unique axis; any axis orthogonal to a is
// used, so callers should rely only on the resulting rotation.
func RotationBetween(a, b Vector3d) Quaternion {
	a = a.Unit()
	b = b.Unit()
	d := a.Dot(b)

	if d < -1+nearOne {
		return FromAxisAngle(orthogonal(a), Pi)
	}
	if d > 1-nearOne {
		return QuaternionIdentity
	}

	return FromAxisAngle(a.Cross(b).Unit(), acos(d))
}

// orthogonal returns a unit vector perpendicular to the unit vector a. It
// crosses a with the basis axis least parallel to it so the product never
// vanishes.
func orthogonal(a Vector3d) Vector3d {
	x, y, z := abs(a.X), abs(a.Y), abs(a.Z)
	var basis Vector3d
	switch {
	case x <= y && x <= z:
		basis = Vector3dI
	case y <= z:
		basis = Vector3dJ
	default:
		basis = Vector3dK
	}
	return a.Cross(basis).Unit()
}
