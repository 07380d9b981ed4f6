// Package rotmat builds 3x3 rotation matrices. It is an independent check
// on the vector package's rotations and is not part of the public API.
package rotmat

import (
	"math"
)

// M represents a row-major 3x3 matrix
type M [9]float64

// Identity returns the identity matrix
func Identity() M {
	return M{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Multiply returns the product of two matrices
func (m M) Multiply(other M) M {
	result := M{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i*3+j] += m[i*3+k] * other[k*3+j]
			}
		}
	}
	return result
}

// Transform applies the matrix to the column vector (x, y, z)
func (m M) Transform(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// RotationMatrix returns a rotation matrix that rotates around the x, y, and z axes
// by the specified angles (in radians), in that order.
func RotationMatrix(xAngle, yAngle, zAngle float64) M {
	return RotationZ(zAngle).Multiply(RotationY(yAngle)).Multiply(RotationX(xAngle))
}

// AxisAngle returns the matrix rotating by angle about the axis (x, y, z).
// The axis is normalized first.
func AxisAngle(x, y, z, angle float64) M {
	n := math.Sqrt(x*x + y*y + z*z)
	x, y, z = x/n, y/n, z/n
	s, c := math.Sincos(angle)
	t := 1 - c

	return M{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	}
}

func RotationX(xAngle float64) M {
	sinX, cosX := math.Sincos(xAngle)

	return M{
		1, 0, 0,
		0, cosX, -sinX,
		0, sinX, cosX,
	}
}

func RotationY(yAngle float64) M {
	sinY, cosY := math.Sincos(yAngle)

	return M{
		cosY, 0, sinY,
		0, 1, 0,
		-sinY, 0, cosY,
	}
}

func RotationZ(zAngle float64) M {
	sinZ, cosZ := math.Sincos(zAngle)

	return M{
		cosZ, -sinZ, 0,
		sinZ, cosZ, 0,
		0, 0, 1,
	}
}
