package vector

import "math"

// Vec2 is a vector in 2D Euclidean space. X is the coefficient of the i unit
// vector, Y the coefficient of j.
//
// Vec2 is a plain value: every method except the pointer-receiver mutators
// returns a new vector and leaves the receiver untouched.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewVec2 returns the vector xi + yj.
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// SetVec2 returns a vector with both components set to value.
func SetVec2(value float64) Vec2 { return Vec2{X: value, Y: value} }

// I2 returns the unit vector i.
func I2() Vec2 { return Vec2{X: 1} }

// J2 returns the unit vector j.
func J2() Vec2 { return Vec2{Y: 1} }

// Origin2 returns the zero vector.
func Origin2() Vec2 { return Vec2{} }

// Select2 returns a vector with the labelled axis set to value and the other
// axis zero. Valid labels are "i"/"x" and "j"/"y"; ok is false for anything else.
func Select2(label string, value float64) (v Vec2, ok bool) {
	switch label {
	case "i", "x":
		return Vec2{X: value}, true
	case "j", "y":
		return Vec2{Y: value}, true
	default:
		return Vec2{}, false
	}
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) SquaredMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.SquaredMagnitude())
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// ScaleComps multiplies x by other.X and y by other.Y. Same as Mul.
func (v Vec2) ScaleComps(other Vec2) Vec2 {
	return v.Mul(other)
}

// Equal reports exact floating-point equality of both components.
func (v Vec2) Equal(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
}

// GreaterThan reports whether v is strictly longer than other.
func (v Vec2) GreaterThan(other Vec2) bool {
	return v.SquaredMagnitude() > other.SquaredMagnitude()
}

// CompWiseGT reports whether every component of v is strictly greater than
// the matching component of other.
func (v Vec2) CompWiseGT(other Vec2) bool {
	return v.X > other.X && v.Y > other.Y
}

// AsCylindrical returns (r, theta) where r = sqrt(x²+y²) and theta = atan(y/x).
// The one-argument arctangent loses the quadrant; x == 0 gives ±π/2, or NaN
// for the zero vector.
func (v Vec2) AsCylindrical() Vec2 {
	return Vec2{
		X: math.Sqrt(v.X*v.X + v.Y*v.Y),
		Y: math.Atan(v.Y / v.X),
	}
}

// To3D extends v with the given z component.
func (v Vec2) To3D(z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// ToUnit scales v to unit length in place. A zero vector is left unchanged.
func (v *Vec2) ToUnit() {
	mag := v.Magnitude()
	if mag > 0 {
		inv := 1 / mag
		v.X *= inv
		v.Y *= inv
	}
}

// Normalized returns the unit vector pointing along v. ok is false for the
// zero vector, which has no direction.
func (v Vec2) Normalized() (unit Vec2, ok bool) {
	mag := v.Magnitude()
	if mag > 0 {
		inv := 1 / mag
		return Vec2{X: v.X * inv, Y: v.Y * inv}, true
	}
	return Vec2{}, false
}

// AddScaled returns v + other*k.
func (v Vec2) AddScaled(other Vec2, k float64) Vec2 {
	return v.Add(other.Scale(k))
}

// ScaleAdd returns v*k + other.
func (v Vec2) ScaleAdd(k float64, other Vec2) Vec2 {
	return v.Scale(k).Add(other)
}

// Arithmetic is component-wise throughout; Mul and Div are Hadamard
// operations, not dot or cross products.

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{X: v.X / o.X, Y: v.Y / o.Y} }

func (v *Vec2) AddAssign(o Vec2) { v.X += o.X; v.Y += o.Y }
func (v *Vec2) SubAssign(o Vec2) { v.X -= o.X; v.Y -= o.Y }
func (v *Vec2) MulAssign(o Vec2) { v.X *= o.X; v.Y *= o.Y }
func (v *Vec2) DivAssign(o Vec2) { v.X /= o.X; v.Y /= o.Y }
