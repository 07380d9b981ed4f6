package vector

import "go.uber.org/zap/zapcore"

var (
	_ zapcore.ObjectMarshaler = Vector2d{}
	_ zapcore.ObjectMarshaler = Vector3d{}
	_ zapcore.ObjectMarshaler = Quaternion{}
)

// MarshalLogObject lets a Vector2d be logged with zap.Object.
func (v Vector2d) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", float64(v.X))
	enc.AddFloat64("y", float64(v.Y))
	return nil
}

// MarshalLogObject lets a Vector3d be logged with zap.Object.
func (v Vector3d) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", float64(v.X))
	enc.AddFloat64("y", float64(v.Y))
	enc.AddFloat64("z", float64(v.Z))
	return nil
}

// MarshalLogObject lets a Quaternion be logged with zap.Object.
func (q Quaternion) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", float64(q.X))
	enc.AddFloat64("y", float64(q.Y))
	enc.AddFloat64("z", float64(q.Z))
	enc.AddFloat64("w", float64(q.W))
	return nil
}
