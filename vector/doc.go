// Package vector provides 2D vectors, 3D vectors and quaternions for
// graphics, robotics and control code.
//
// All three types are small values. Methods return new values; the *Assign
// variants update the receiver in place. Angles are in radians.
//
// Rotations:
//
//	q := vector.FromAxisAngle(vector.Vector3dK, vector.Pi/2)
//	v := vector.Vector3dI.RotateBy(q) // ≈ (0, 1, 0)
//
// Quaternions must be unit length before they are used as rotations or
// interpolated; nothing normalizes implicitly.
//
// Degenerate input is not checked: normalizing a zero vector, dividing by
// zero or rotating about a zero axis produces NaN or Inf components rather
// than an error. IsFinite reports whether a result is usable.
//
// Numeric backend:
//
// Scalar is float64 by default. Building with the tag `vector_float32`
// switches every type to float32 (via github.com/chewxy/math32).
package vector
