package rotmat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplyIdentity(t *testing.T) {
	a := Identity()
	b := RotationMatrix(0.3, -1.1, 2.0)
	require.Equal(t, b, a.Multiply(b))
	require.Equal(t, b, b.Multiply(a))
}

func TestRotationZQuarterTurn(t *testing.T) {
	x, y, z := RotationZ(math.Pi/2).Transform(1, 0, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
	assert.InDelta(t, 0, z, 1e-12)
}

func TestAxisAngleMatchesElementaryRotations(t *testing.T) {
	cases := []struct {
		name    string
		axis    [3]float64
		rotated func(float64) M
	}{
		{"x", [3]float64{2, 0, 0}, RotationX},
		{"y", [3]float64{0, 3, 0}, RotationY},
		{"z", [3]float64{0, 0, 0.5}, RotationZ},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, angle := range []float64{-2.5, -0.4, 0, 0.7, math.Pi} {
				got := AxisAngle(tc.axis[0], tc.axis[1], tc.axis[2], angle)
				want := tc.rotated(angle)
				for i := range got {
					assert.InDelta(t, want[i], got[i], 1e-12)
				}
			}
		})
	}
}

func TestRotationMatrixOrder(t *testing.T) {
	// X first: (0,1,0) -> (0,0,1), then Z leaves it alone.
	x, y, z := RotationMatrix(math.Pi/2, 0, math.Pi/2).Transform(0, 1, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.InDelta(t, 1, z, 1e-12)
}
