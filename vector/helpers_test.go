package vector

import (
	"testing"

	"github.com/MichaelTJones/pcg"
	"github.com/stretchr/testify/assert"
)

// tol is loose enough for the vector_float32 build as well.
const tol = 1e-5

// sampler draws reproducible test inputs.
type sampler struct {
	r *pcg.PCG32
}

func newSampler(seed int64) *sampler {
	r := pcg.NewPCG32()
	r.Seed(uint64(seed), 0xda3e39cb94b95bdb)
	return &sampler{r: r}
}

func (s *sampler) scalar(low, high Scalar) Scalar {
	f := float64(s.r.Random()) / (1<<32 - 1)
	return low + (high-low)*Scalar(f)
}

func (s *sampler) vector3d() Vector3d {
	for {
		v := Vector3d{s.scalar(-10, 10), s.scalar(-10, 10), s.scalar(-10, 10)}
		if v.Magnitude() > 0.1 {
			return v
		}
	}
}

func (s *sampler) unitQuaternion() Quaternion {
	for {
		q := Quaternion{s.scalar(-1, 1), s.scalar(-1, 1), s.scalar(-1, 1), s.scalar(-1, 1)}
		if q.Norm() > 0.1 {
			return q.Unit()
		}
	}
}

func assertVector2d(t *testing.T, want, got Vector2d) {
	t.Helper()
	assert.Truef(t, want.EqualsWithin(got, tol), "want %v, got %v", want, got)
}

func assertVector3d(t *testing.T, want, got Vector3d) {
	t.Helper()
	assert.Truef(t, want.EqualsWithin(got, tol), "want %v, got %v", want, got)
}

func assertQuaternion(t *testing.T, want, got Quaternion) {
	t.Helper()
	assert.Truef(t, want.EqualsWithin(got, tol), "want %v, got %v", want, got)
}

// setCompareAccuracy swaps CompareAccuracy for the duration of a test.
func setCompareAccuracy(t *testing.T, eps Scalar) {
	t.Helper()
	old := CompareAccuracy
	CompareAccuracy = eps
	t.Cleanup(func() { CompareAccuracy = old })
}
