package scenario

import (
	"fmt"

	"github.com/zeusync/vecmath/pkg/physics"
	"github.com/zeusync/vecmath/pkg/vector"
)

// evaluate runs a validated step.
func evaluate(s Step) Result {
	if s.dims() == 2 {
		return evaluate2(s)
	}
	return evaluate3(s)
}

func evaluate2(s Step) Result {
	a, b := s.A.To2D(), s.B.To2D()

	switch s.Op {
	case OpAdd:
		return vec2Result(a.Add(b))
	case OpSub:
		return vec2Result(a.Sub(b))
	case OpMul:
		return vec2Result(a.Mul(b))
	case OpDiv:
		return vec2Result(a.Div(b))
	case OpScale:
		return vec2Result(a.Scale(s.Scalar))
	case OpAddScaled:
		return vec2Result(a.AddScaled(b, s.Scalar))
	case OpScaleAdd:
		return vec2Result(a.ScaleAdd(s.Scalar, b))
	case OpAbs:
		return vec2Result(a.Abs())
	case OpDot:
		return scalarResult(a.Dot(b))
	case OpMagnitude:
		return scalarResult(a.Magnitude())
	case OpNormalize:
		unit, ok := a.Normalized()
		if !ok {
			return errResult(ErrZeroVector)
		}
		return vec2Result(unit)
	case OpUnit:
		a.ToUnit()
		return vec2Result(a)
	case OpCylindrical:
		return vec2Result(a.AsCylindrical())
	case OpSelect:
		v, ok := vector.Select2(s.Label, s.Scalar)
		if !ok {
			return errResult(fmt.Errorf("%w: %q", ErrInvalidLabel, s.Label))
		}
		return vec2Result(v)
	case OpEqual:
		return boolResult(a.Equal(b))
	case OpGreater:
		return boolResult(a.GreaterThan(b))
	case OpCompGT:
		return boolResult(a.CompWiseGT(b))
	case OpDistance:
		return scalarResult(physics.Distance2(a, b))
	case OpMoment:
		return scalarResult(physics.Moment2(a, b))
	}
	return evaluateScalars(s)
}

func evaluate3(s Step) Result {
	a, b, c := s.A, s.B, s.C

	switch s.Op {
	case OpAdd:
		return vec3Result(a.Add(b))
	case OpSub:
		return vec3Result(a.Sub(b))
	case OpMul:
		return vec3Result(a.Mul(b))
	case OpDiv:
		return vec3Result(a.Div(b))
	case OpScale:
		return vec3Result(a.Scale(s.Scalar))
	case OpAddScaled:
		return vec3Result(a.AddScaled(b, s.Scalar))
	case OpScaleAdd:
		return vec3Result(a.ScaleAdd(s.Scalar, b))
	case OpAbs:
		return vec3Result(a.Abs())
	case OpDot:
		return scalarResult(a.Dot(b))
	case OpCross:
		return vec3Result(a.Cross(b))
	case OpMagnitude:
		return scalarResult(a.Magnitude())
	case OpNormalize:
		unit, ok := a.Normalized()
		if !ok {
			return errResult(ErrZeroVector)
		}
		return vec3Result(unit)
	case OpUnit:
		a.ToUnit()
		return vec3Result(a)
	case OpTripleScalar:
		return scalarResult(a.TripleScalarProd(b, c))
	case OpTripleVector:
		return vec3Result(a.TripleVectorProd(b, c))
	case OpCylindrical:
		a.AsCylindrical()
		return vec3Result(a)
	case OpSpherical:
		a.AsSpherical()
		return vec3Result(a)
	case OpSelect:
		v, ok := vector.Select3(s.Label, s.Scalar)
		if !ok {
			return errResult(fmt.Errorf("%w: %q", ErrInvalidLabel, s.Label))
		}
		return vec3Result(v)
	case OpComponent:
		comp, err := a.Component(s.Index)
		if err != nil {
			return errResult(err)
		}
		return scalarResult(comp)
	case OpTo2D:
		return vec2Result(a.To2D())
	case OpEqual:
		return boolResult(a.Equal(b))
	case OpGreater:
		return boolResult(a.GreaterThan(b))
	case OpCompGT:
		return boolResult(a.CompWiseGT(b))
	case OpDistance:
		return scalarResult(physics.Distance3(a, b))
	case OpMoment:
		return vec3Result(physics.Moment(a, b))
	case OpSurfaceGravity:
		return vec3Result(physics.SurfaceGravity(s.Mass, s.Radius))
	}
	return evaluateScalars(s)
}

func evaluateScalars(s Step) Result {
	switch s.Op {
	case OpGravity:
		return scalarResult(physics.GravitationalAcceleration(s.Mass, s.Radius))
	case OpEscapeVelocity:
		return scalarResult(physics.EscapeVelocity(s.Mass, s.Radius))
	default:
		return errResult(fmt.Errorf("%w: %s in %dD", ErrInvalidDims, s.Op, s.dims()))
	}
}
