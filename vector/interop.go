package vector

import (
	"github.com/deeean/go-vector/vector2"
	"github.com/deeean/go-vector/vector3"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from the float64 vector types of other libraries.

// FromGoVector2 converts a go-vector 2D vector.
func FromGoVector2(v vector2.Vector2) Vector2d {
	return Vector2d{X: Scalar(v.X), Y: Scalar(v.Y)}
}

// GoVector converts v to a go-vector 2D vector.
func (v Vector2d) GoVector() vector2.Vector2 {
	return vector2.Vector2{X: float64(v.X), Y: float64(v.Y)}
}

// FromGoVector3 converts a go-vector 3D vector.
func FromGoVector3(v vector3.Vector3) Vector3d {
	return Vector3d{X: Scalar(v.X), Y: Scalar(v.Y), Z: Scalar(v.Z)}
}

// GoVector converts v to a go-vector 3D vector.
func (v Vector3d) GoVector() vector3.Vector3 {
	return vector3.Vector3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec.
func FromR3(v r3.Vec) Vector3d {
	return Vector3d{X: Scalar(v.X), Y: Scalar(v.Y), Z: Scalar(v.Z)}
}

// R3 converts v to a gonum r3.Vec.
func (v Vector3d) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromQuatNumber converts a gonum quaternion. gonum keeps the real part
// first; the imaginary parts map onto X, Y and Z.
func FromQuatNumber(n quat.Number) Quaternion {
	return Quaternion{
		X: Scalar(n.Imag),
		Y: Scalar(n.Jmag),
		Z: Scalar(n.Kmag),
		W: Scalar(n.Real),
	}
}

// QuatNumber converts q to a gonum quaternion.
func (q Quaternion) QuatNumber() quat.Number {
	return quat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}
