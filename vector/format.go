package vector

import "fmt"

// Components print with five significant digits. The output is for humans
// and is not meant to be parsed back.

func (v Vector2d) String() string {
	return fmt.Sprintf("(%.5g, %.5g)", v.X, v.Y)
}

func (v Vector3d) String() string {
	return fmt.Sprintf("(%.5g, %.5g, %.5g)", v.X, v.Y, v.Z)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%.5g, %.5g, %.5g, %.5g)", q.X, q.Y, q.Z, q.W)
}
