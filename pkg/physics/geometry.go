package physics

import "github.com/zeusync/vecmath/pkg/vector"

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(a, b vector.Vec2) float64 { return b.Sub(a).Magnitude() }

// Distance3 computes Euclidean distance between two 3D points.
func Distance3(a, b vector.Vec3) float64 { return b.Sub(a).Magnitude() }

// Moment returns the moment of force f about a fixed point, where r is the
// position of the point of application relative to that point: M = r × F.
func Moment(r, f vector.Vec3) vector.Vec3 { return r.Cross(f) }

// Moment2 is Moment for coplanar r and f; only the k component is non-zero,
// so it is returned as a scalar.
func Moment2(r, f vector.Vec2) float64 { return Moment(r.To3D(0), f.To3D(0)).Z }
