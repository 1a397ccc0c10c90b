package vector

import "go.uber.org/zap/zapcore"

var (
	_ zapcore.ObjectMarshaler = Vec2{}
	_ zapcore.ObjectMarshaler = Vec3{}
)

func (v Vec2) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	enc.AddFloat64("magnitude", v.Magnitude())
	return nil
}

func (v Vec3) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	enc.AddFloat64("z", v.Z)
	enc.AddFloat64("magnitude", v.Magnitude())
	return nil
}
