package vector

import (
	"fmt"
	"math"
)

// Vec3 is a vector in 3D Euclidean space along the i, j and k unit vectors.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// NewVec3 returns the vector xi + yj + zk.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// SetVec3 returns a vector with all three components set to value.
func SetVec3(value float64) Vec3 { return Vec3{X: value, Y: value, Z: value} }

func I3() Vec3      { return Vec3{X: 1} }
func J3() Vec3      { return Vec3{Y: 1} }
func K3() Vec3      { return Vec3{Z: 1} }
func Origin3() Vec3 { return Vec3{} }

// Select3 returns a vector with the labelled axis set to value and the others
// zero. Valid labels are "i"/"x", "j"/"y" and "k"/"z"; ok is false otherwise.
func Select3(label string, value float64) (v Vec3, ok bool) {
	switch label {
	case "i", "x":
		return Vec3{X: value}, true
	case "j", "y":
		return Vec3{Y: value}, true
	case "k", "z":
		return Vec3{Z: value}, true
	default:
		return Vec3{}, false
	}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v × other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// TripleScalarProd returns v · (a × b), the signed volume of the
// parallelepiped spanned by the three vectors.
func (v Vec3) TripleScalarProd(a, b Vec3) float64 {
	return v.X*(a.Y*b.Z-a.Z*b.Y) +
		v.Y*(a.Z*b.X-a.X*b.Z) +
		v.Z*(a.X*b.Y-a.Y*b.X)
}

// TripleVectorProd returns v × (a × b).
func (v Vec3) TripleVectorProd(a, b Vec3) Vec3 {
	return v.Cross(a.Cross(b))
}

func (v Vec3) SquaredMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.SquaredMagnitude())
}

func (v Vec3) Abs() Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// ScaleComps is the Hadamard product, identical to Mul.
func (v Vec3) ScaleComps(other Vec3) Vec3 {
	return v.Mul(other)
}

// ToUnit scales v to unit length in place. A zero vector is left unchanged.
func (v *Vec3) ToUnit() {
	mag := v.Magnitude()
	if mag > 0 {
		inv := 1 / mag
		v.X *= inv
		v.Y *= inv
		v.Z *= inv
	}
}

// Normalized returns the unit vector along v, or ok == false for the zero vector.
func (v Vec3) Normalized() (unit Vec3, ok bool) {
	mag := v.Magnitude()
	if mag > 0 {
		inv := 1 / mag
		return Vec3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}, true
	}
	return Vec3{}, false
}

func (v Vec3) AddScaled(other Vec3, k float64) Vec3 {
	return v.Add(other.Scale(k))
}

func (v Vec3) ScaleAdd(k float64, other Vec3) Vec3 {
	return v.Scale(k).Add(other)
}

// To2D drops the z component.
func (v Vec3) To2D() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

func (v Vec3) Equal(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// GreaterThan reports whether v is strictly longer than other.
func (v Vec3) GreaterThan(other Vec3) bool {
	return v.SquaredMagnitude() > other.SquaredMagnitude()
}

// CompWiseGT reports whether x, y and z are each strictly greater than the
// matching component of other.
func (v Vec3) CompWiseGT(other Vec3) bool {
	return v.X > other.X && v.Y > other.Y && v.Z > other.Z
}

// AsCylindrical converts v in place to (r, theta, z) with r = sqrt(x²+y²) and
// theta = atan(y/x). Both are computed from the Cartesian x and y.
func (v *Vec3) AsCylindrical() {
	x, y := v.X, v.Y
	v.X = math.Sqrt(x*x + y*y)
	v.Y = math.Atan(y / x)
}

// AsSpherical converts v in place to (r, theta, phi): r the magnitude, theta
// the polar angle acos(z/r) measured from +k, phi the azimuth atan2(y, x).
// The zero vector yields theta = NaN.
func (v *Vec3) AsSpherical() {
	x, y, z := v.X, v.Y, v.Z
	r := v.Magnitude()
	v.X = r
	v.Y = math.Acos(z / r)
	v.Z = math.Atan2(y, x)
}

// Component returns x, y or z for index 0, 1 or 2.
func (v Vec3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
}

// At is Component for callers that treat a bad index as a programming error.
// It panics for any index other than 0, 1 or 2.
func (v Vec3) At(i int) float64 {
	c, err := v.Component(i)
	if err != nil {
		panic(err)
	}
	return c
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z} }

func (v *Vec3) AddAssign(o Vec3) { v.X += o.X; v.Y += o.Y; v.Z += o.Z }
func (v *Vec3) SubAssign(o Vec3) { v.X -= o.X; v.Y -= o.Y; v.Z -= o.Z }
func (v *Vec3) MulAssign(o Vec3) { v.X *= o.X; v.Y *= o.Y; v.Z *= o.Z }
func (v *Vec3) DivAssign(o Vec3) { v.X /= o.X; v.Y /= o.Y; v.Z /= o.Z }
