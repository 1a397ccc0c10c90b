package scenario

import (
	"fmt"
	"strconv"

	"github.com/zeusync/vecmath/pkg/vector"
)

// Result is the outcome of one step. Exactly one of Scalar, Vec2, Vec3 and
// Bool is set unless Err is non-nil.
type Result struct {
	StepID string
	Op     Op
	Scalar *float64
	Vec2   *vector.Vec2
	Vec3   *vector.Vec3
	Bool   *bool
	Err    error

	precision int
}

// Value renders the result without the step id.
func (r Result) Value() string {
	switch {
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Scalar != nil:
		return strconv.FormatFloat(*r.Scalar, 'f', -1, 64)
	case r.Vec2 != nil:
		return fmt.Sprintf("%v (|v| = %.*b)", *r.Vec2, r.precision, *r.Vec2)
	case r.Vec3 != nil:
		return fmt.Sprintf("%v (|v| = %.*b)", *r.Vec3, r.precision, *r.Vec3)
	case r.Bool != nil:
		return strconv.FormatBool(*r.Bool)
	default:
		return "<none>"
	}
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %s = %s", r.StepID, r.Op, r.Value())
}

func scalarResult(v float64) Result   { return Result{Scalar: &v} }
func vec2Result(v vector.Vec2) Result { return Result{Vec2: &v} }
func vec3Result(v vector.Vec3) Result { return Result{Vec3: &v} }
func boolResult(v bool) Result        { return Result{Bool: &v} }
func errResult(err error) Result      { return Result{Err: err} }
