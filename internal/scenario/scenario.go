package scenario

import "github.com/zeusync/vecmath/pkg/vector"

// File is a named list of worked vector problems.
type File struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Precision overrides Config.Precision for this file.
	Precision *int   `json:"precision,omitempty" yaml:"precision,omitempty"`
	Steps     []Step `json:"steps" yaml:"steps"`
}

// Step is a single operation. Which operands are read depends on Op; Dims
// selects between the 2D and 3D form, with 2D operands taken from x and y.
type Step struct {
	ID     string      `json:"id" yaml:"id"`
	Op     Op          `json:"op" yaml:"op"`
	Dims   int         `json:"dims,omitempty" yaml:"dims,omitempty"`
	A      vector.Vec3 `json:"a,omitempty" yaml:"a,omitempty"`
	B      vector.Vec3 `json:"b,omitempty" yaml:"b,omitempty"`
	C      vector.Vec3 `json:"c,omitempty" yaml:"c,omitempty"`
	Scalar float64     `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Label  string      `json:"label,omitempty" yaml:"label,omitempty"`
	Index  int         `json:"index,omitempty" yaml:"index,omitempty"`
	Mass   float64     `json:"mass,omitempty" yaml:"mass,omitempty"`
	Radius float64     `json:"radius,omitempty" yaml:"radius,omitempty"`
}

func (s Step) dims() int {
	if s.Dims == 0 {
		return 3
	}
	return s.Dims
}

type Op string

const (
	OpAdd            Op = "add"
	OpSub            Op = "sub"
	OpMul            Op = "mul"
	OpDiv            Op = "div"
	OpScale          Op = "scale"
	OpAddScaled      Op = "add_scaled"
	OpScaleAdd       Op = "scale_add"
	OpAbs            Op = "abs"
	OpDot            Op = "dot"
	OpCross          Op = "cross"
	OpMagnitude      Op = "magnitude"
	OpNormalize      Op = "normalize"
	OpUnit           Op = "unit"
	OpTripleScalar   Op = "triple_scalar"
	OpTripleVector   Op = "triple_vector"
	OpCylindrical    Op = "cylindrical"
	OpSpherical      Op = "spherical"
	OpSelect         Op = "select"
	OpComponent      Op = "component"
	OpTo2D           Op = "to2d"
	OpEqual          Op = "equal"
	OpGreater        Op = "greater"
	OpCompGT         Op = "comp_gt"
	OpDistance       Op = "distance"
	OpMoment         Op = "moment"
	OpGravity        Op = "gravity"
	OpSurfaceGravity Op = "surface_gravity"
	OpEscapeVelocity Op = "escape_velocity"
)

// opDims lists the dimensions each operation accepts. Physics formulas that
// take only scalars accept either.
var opDims = map[Op][]int{
	OpAdd:            {2, 3},
	OpSub:            {2, 3},
	OpMul:            {2, 3},
	OpDiv:            {2, 3},
	OpScale:          {2, 3},
	OpAddScaled:      {2, 3},
	OpScaleAdd:       {2, 3},
	OpAbs:            {2, 3},
	OpDot:            {2, 3},
	OpCross:          {3},
	OpMagnitude:      {2, 3},
	OpNormalize:      {2, 3},
	OpUnit:           {2, 3},
	OpTripleScalar:   {3},
	OpTripleVector:   {3},
	OpCylindrical:    {2, 3},
	OpSpherical:      {3},
	OpSelect:         {2, 3},
	OpComponent:      {3},
	OpTo2D:           {3},
	OpEqual:          {2, 3},
	OpGreater:        {2, 3},
	OpCompGT:         {2, 3},
	OpDistance:       {2, 3},
	OpMoment:         {2, 3},
	OpGravity:        {2, 3},
	OpSurfaceGravity: {3},
	OpEscapeVelocity: {2, 3},
}
