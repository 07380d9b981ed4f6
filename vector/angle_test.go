package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitRadRange(t *testing.T) {
	cases := []struct {
		in, want Scalar
	}{
		{0, 0},
		{0.5, 0.5},
		{Pi, Pi},
		{-Pi, -Pi},
		{3 * Pi / 2, -Pi / 2},
		{-3 * Pi / 2, Pi / 2},
		{TwoPi - 0.1, -0.1},
		{-TwoPi + 0.1, 0.1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, LimitRadRange(tc.in), tol, "LimitRadRange(%v)", tc.in)
	}
}

func TestLimitDegRange(t *testing.T) {
	cases := []struct {
		in, want Scalar
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{181, -179},
		{-181, 179},
		{270, -90},
		{-359, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LimitDegRange(tc.in), "LimitDegRange(%v)", tc.in)
	}
}

func TestDegRadConversion(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), tol)
	assert.InDelta(t, -Pi/4, DegToRad(-45), tol)
	assert.InDelta(t, 90, RadToDeg(Pi/2), tol)
	assert.InDelta(t, 360, RadToDeg(TwoPi), tol)

	for _, deg := range []Scalar{-720, -33.3, 0, 12.5, 359} {
		assert.InDelta(t, deg, RadToDeg(DegToRad(deg)), 1e-3)
	}
}
