package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestVec2Constructors(t *testing.T) {
	require.Equal(t, Vec2{X: 1, Y: 2}, NewVec2(1, 2))
	require.Equal(t, Vec2{X: 7, Y: 7}, SetVec2(7))
	require.Equal(t, Vec2{X: 1}, I2())
	require.Equal(t, Vec2{Y: 1}, J2())
	require.Equal(t, Vec2{}, Origin2())
}

func TestSelect2(t *testing.T) {
	tests := []struct {
		label string
		want  Vec2
		ok    bool
	}{
		{"i", Vec2{X: -9.81}, true},
		{"x", Vec2{X: -9.81}, true},
		{"j", Vec2{Y: -9.81}, true},
		{"y", Vec2{Y: -9.81}, true},
		{"z", Vec2{}, false},
		{"k", Vec2{}, false},
		{"X", Vec2{}, false},
		{"", Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := Select2(tt.label, -9.81)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVec2Queries(t *testing.T) {
	v := NewVec2(3, -4)

	assert.Equal(t, 0.0, I2().Dot(J2()))
	assert.Equal(t, 3*2.0+(-4)*5.0, v.Dot(NewVec2(2, 5)))
	assert.Equal(t, 25.0, v.SquaredMagnitude())
	assert.Equal(t, 5.0, v.Magnitude())
	assert.Equal(t, 0.0, Origin2().Magnitude())
	assert.Equal(t, NewVec2(3, 4), v.Abs())
	assert.Equal(t, NewVec2(6, -8), v.Scale(2))
	assert.Equal(t, NewVec2(6, -20), v.ScaleComps(NewVec2(2, 5)))
	assert.True(t, v.Equal(NewVec2(3, -4)))
	assert.False(t, v.Equal(NewVec2(3, 4)))
}

func TestVec2Comparisons(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(-4, -3)

	assert.False(t, a.GreaterThan(b), "equal lengths are not greater")
	assert.True(t, NewVec2(0, 6).GreaterThan(a))
	assert.True(t, a.CompWiseGT(b))
	assert.False(t, a.CompWiseGT(NewVec2(3, 0)), "comparison is strict on every axis")
	assert.False(t, a.CompWiseGT(NewVec2(0, 5)))
}

func TestVec2Normalized(t *testing.T) {
	_, ok := Origin2().Normalized()
	require.False(t, ok)

	for _, v := range []Vec2{NewVec2(3, 4), NewVec2(-0.001, 2e6), NewVec2(1e-100, 0)} {
		unit, ok := v.Normalized()
		require.True(t, ok, v.String())
		assert.InDelta(t, 1.0, unit.Magnitude(), eps)
		// same direction: positive scalar multiple
		assert.InDelta(t, v.Magnitude(), unit.Dot(v), 1e-9*v.Magnitude())
	}
}

func TestVec2ToUnit(t *testing.T) {
	v := NewVec2(0, 5)
	v.ToUnit()
	assert.Equal(t, NewVec2(0, 1), v)

	zero := Origin2()
	zero.ToUnit()
	assert.Equal(t, Origin2(), zero)
}

func TestVec2ScaleMagnitude(t *testing.T) {
	v := NewVec2(1.5, -2.25)
	for _, k := range []float64{0, 1, -1, 3.5, -1e3, 1e-4} {
		assert.InDelta(t, math.Abs(k)*v.Magnitude(), v.Scale(k).Magnitude(), 1e-9)
	}
}

func TestVec2Combinators(t *testing.T) {
	v := NewVec2(1, 2)
	w := NewVec2(-3, 0.5)

	assert.Equal(t, v.Add(w.Scale(4)), v.AddScaled(w, 4))
	assert.Equal(t, NewVec2(-11, 4), v.AddScaled(w, 4))
	assert.Equal(t, NewVec2(-1, 6.5), v.ScaleAdd(2, w.Add(NewVec2(0, 2))))
}

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(2, 3)
	b := NewVec2(4, 5)

	assert.Equal(t, NewVec2(6, 8), a.Add(b))
	assert.Equal(t, NewVec2(-2, -2), a.Sub(b))
	assert.Equal(t, NewVec2(8, 15), a.Mul(b))
	assert.Equal(t, NewVec2(2, 3), NewVec2(8, 15).Div(b))

	c := a
	c.AddAssign(b)
	assert.Equal(t, NewVec2(6, 8), c)
	c.SubAssign(b)
	assert.Equal(t, a, c)
	c.MulAssign(b)
	assert.Equal(t, NewVec2(8, 15), c)
	c.DivAssign(b)
	assert.Equal(t, a, c)

	inf := NewVec2(1, 0).Div(NewVec2(0, 0))
	assert.True(t, math.IsInf(inf.X, 1))
	assert.True(t, math.IsNaN(inf.Y))
}

func TestVec2AsCylindrical(t *testing.T) {
	c := NewVec2(1, 1).AsCylindrical()
	assert.InDelta(t, math.Sqrt2, c.X, eps)
	assert.InDelta(t, math.Pi/4, c.Y, eps)

	// one-argument arctangent: third quadrant folds onto the first
	c = NewVec2(-1, -1).AsCylindrical()
	assert.InDelta(t, math.Pi/4, c.Y, eps)

	c = NewVec2(0, 2).AsCylindrical()
	assert.Equal(t, 2.0, c.X)
	assert.InDelta(t, math.Pi/2, c.Y, eps)
}

func TestVec2To3D(t *testing.T) {
	assert.Equal(t, NewVec3(1, 2, 3), NewVec2(1, 2).To3D(3))
}
