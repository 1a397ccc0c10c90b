package scenario

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/vecmath/internal/observability/log"
	"github.com/zeusync/vecmath/pkg/vector"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(DefaultConfig(), log.NewNop())
}

func runSteps(t *testing.T, steps ...Step) []Result {
	t.Helper()
	report, err := newTestEvaluator().Run(context.Background(), &File{Name: t.Name(), Steps: steps})
	require.NoError(t, err)
	require.Len(t, report.Results, len(steps))
	return report.Results
}

func TestEvaluateRendering(t *testing.T) {
	v3 := vector.NewVec3
	tests := []struct {
		step Step
		want string
	}{
		{Step{Op: OpAdd, A: v3(1, 2, 3), B: v3(4, 5, 6)}, "5i + 7j + 9k (|v| = 12.4499)"},
		{Step{Op: OpMul, A: v3(2, 3, 4), B: v3(1, -2, 8)}, "2i + -6j + 32k (|v| = 32.6190)"},
		{Step{Op: OpScale, Dims: 2, A: v3(1, -2, 99), Scalar: 3}, "3i + -6j (|v| = 6.7082)"},
		{Step{Op: OpDot, Dims: 2, A: v3(1, 2, 0), B: v3(3, 4, 0)}, "11"},
		{Step{Op: OpCross, A: vector.I3(), B: vector.J3()}, "0i + 0j + 1k (|v| = 1.0000)"},
		{Step{Op: OpNormalize, A: v3(0, 0, 2)}, "0i + 0j + 1k (|v| = 1.0000)"},
		{Step{Op: OpUnit, A: vector.Origin3()}, "0i + 0j + 0k (|v| = 0.0000)"},
		{Step{Op: OpTripleScalar, A: vector.I3(), B: vector.J3(), C: vector.K3()}, "1"},
		{Step{Op: OpSpherical, A: v3(0, 0, 2)}, "2i + 0j + 0k (|v| = 2.0000)"},
		{Step{Op: OpSelect, Label: "k", Scalar: 1}, "0i + 0j + 1k (|v| = 1.0000)"},
		{Step{Op: OpComponent, A: v3(1, 2, 3), Index: 1}, "2"},
		{Step{Op: OpTo2D, A: v3(1, 2, 3)}, "1i + 2j (|v| = 2.2361)"},
		{Step{Op: OpGreater, A: v3(0, 0, 3), B: vector.SetVec3(1)}, "true"},
		{Step{Op: OpCompGT, Dims: 2, A: v3(2, 2, 0), B: v3(1, 3, 0)}, "false"},
		{Step{Op: OpEqual, Dims: 2, A: v3(1, 2, 3), B: v3(1, 2, 4)}, "true"},
		{Step{Op: OpDistance, Dims: 2, A: v3(1, 1, 0), B: v3(4, 5, 0)}, "5"},
	}
	for i, tt := range tests {
		tt.step.ID = fmt.Sprintf("s%d", i)
		t.Run(string(tt.step.Op), func(t *testing.T) {
			res := runSteps(t, tt.step)[0]
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, res.Value())
			assert.Equal(t, tt.step.ID+": "+string(tt.step.Op)+" = "+tt.want, res.String())
		})
	}
}

func TestEvaluateAbsentResults(t *testing.T) {
	results := runSteps(t,
		Step{ID: "zero", Op: OpNormalize, A: vector.Origin3()},
		Step{ID: "zero-2d", Op: OpNormalize, Dims: 2, A: vector.NewVec3(0, 0, 5)},
		Step{ID: "label-2d", Op: OpSelect, Dims: 2, Label: "z", Scalar: 1},
		Step{ID: "label-3d", Op: OpSelect, Label: "w", Scalar: 1},
		Step{ID: "index", Op: OpComponent, A: vector.NewVec3(1, 2, 3), Index: 3},
	)

	assert.ErrorIs(t, results[0].Err, ErrZeroVector)
	assert.ErrorIs(t, results[1].Err, ErrZeroVector)
	assert.ErrorIs(t, results[2].Err, ErrInvalidLabel)
	assert.ErrorIs(t, results[3].Err, ErrInvalidLabel)
	assert.ErrorIs(t, results[4].Err, vector.ErrIndexOutOfRange)
	assert.Equal(t, "error: "+ErrZeroVector.Error(), results[0].Value())
}

func TestEvaluatePhysics(t *testing.T) {
	results := runSteps(t,
		Step{ID: "m", Op: OpMoment, A: vector.NewVec3(-0.2, 0.16, 0), B: vector.NewVec3(400, 693, 0)},
		Step{ID: "m2", Op: OpMoment, Dims: 2, A: vector.NewVec3(-0.2, 0.16, 0), B: vector.NewVec3(400, 693, 0)},
		Step{ID: "g", Op: OpGravity, Mass: 5.972168e24, Radius: 6371e3},
		Step{ID: "ve", Op: OpEscapeVelocity, Mass: 5.972168e24, Radius: 6371e3},
		Step{ID: "gv", Op: OpSurfaceGravity, Mass: 5.972168e24, Radius: 6371e3},
		Step{ID: "cyl", Op: OpCylindrical, A: vector.NewVec3(3, 4, 5)},
	)

	require.NotNil(t, results[0].Vec3)
	assert.InDelta(t, -202.6, results[0].Vec3.Z, 1e-9)
	require.NotNil(t, results[1].Scalar)
	assert.InDelta(t, -202.6, *results[1].Scalar, 1e-9)
	require.NotNil(t, results[2].Scalar)
	assert.InDelta(t, 9.82, *results[2].Scalar, 0.01)
	require.NotNil(t, results[3].Scalar)
	assert.InDelta(t, 11186, *results[3].Scalar, 5)
	require.NotNil(t, results[4].Vec3)
	assert.InDelta(t, -9.82, results[4].Vec3.Z, 0.01)
	require.NotNil(t, results[5].Vec3)
	assert.Equal(t, 5.0, results[5].Vec3.X)
	assert.InDelta(t, math.Atan(4.0/3), results[5].Vec3.Y, 1e-12)
	assert.Equal(t, 5.0, results[5].Vec3.Z)
}

func TestRunStaticsFile(t *testing.T) {
	f, err := LoadFile("testdata/statics.yaml")
	require.NoError(t, err)

	report, err := newTestEvaluator().Run(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "statics", report.Name)
	assert.Equal(t, 2, report.Failed())
	// file precision overrides the evaluator default
	assert.Equal(t, "0i + 0j + -202.6k (|v| = 202.60)", report.Results[0].Value())
}

func TestRunChecksum(t *testing.T) {
	f, err := LoadFile("testdata/statics.yaml")
	require.NoError(t, err)
	e := newTestEvaluator()

	first, err := e.Run(context.Background(), f)
	require.NoError(t, err)
	second, err := e.Run(context.Background(), f)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Checksum, second.Checksum)

	f.Steps[0].B.X = 401
	third, err := e.Run(context.Background(), f)
	require.NoError(t, err)
	assert.NotEqual(t, first.Checksum, third.Checksum)
}

func TestRunInvalidFile(t *testing.T) {
	_, err := newTestEvaluator().Run(context.Background(), &File{Steps: []Step{{ID: "a", Op: OpAdd}}})
	require.ErrorIs(t, err, ErrMissingName)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEvaluator().Run(ctx, &File{Name: "x", Steps: []Step{{ID: "a", Op: OpAdd}}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsFailedSteps(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := NewEvaluator(Config{Precision: 3}, log.NewWithCore(core, log.LevelInfo))

	_, err := e.Run(context.Background(), &File{Name: "logged", Steps: []Step{
		{ID: "ok", Op: OpMagnitude, A: vector.NewVec3(1, 2, 2)},
		{ID: "bad", Op: OpNormalize},
	}})
	require.NoError(t, err)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "bad", warnings[0].ContextMap()["step"])
	assert.Equal(t, "logged", warnings[0].ContextMap()["scenario"])

	assert.Equal(t, 1, logs.FilterMessage("scenario finished").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}

func TestRunAll(t *testing.T) {
	files := make([]*File, 8)
	for i := range files {
		files[i] = &File{
			Name:  fmt.Sprintf("f%d", i),
			Steps: []Step{{ID: "len", Op: OpMagnitude, A: vector.NewVec3(float64(i), 0, 0)}},
		}
	}

	e := NewEvaluator(Config{Precision: 4, Workers: 3}, log.NewNop())
	reports, err := e.RunAll(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, reports, len(files))
	for i, r := range reports {
		assert.Equal(t, files[i].Name, r.Name)
		assert.Equal(t, float64(i), *r.Results[0].Scalar)
	}
}

func TestRunAllFailure(t *testing.T) {
	files := []*File{
		{Name: "good", Steps: []Step{{ID: "a", Op: OpAdd}}},
		{Name: "bad", Steps: []Step{{ID: "a", Op: "nope"}}},
	}
	_, err := newTestEvaluator().RunAll(context.Background(), files)
	require.ErrorIs(t, err, ErrUnknownOp)
	assert.Contains(t, err.Error(), `scenario "bad"`)
}

func TestNegativePrecision(t *testing.T) {
	require.ErrorIs(t, Config{Precision: -1}.Validate(), ErrInvalidPrecision)
	require.NoError(t, DefaultConfig().Validate())

	e := NewEvaluator(Config{Precision: -2}, log.NewNop())
	report, err := e.Run(context.Background(), &File{Name: "clamped", Steps: []Step{
		{ID: "v", Op: OpAdd, A: vector.NewVec3(3, 4, 0)},
	}})
	require.NoError(t, err)
	assert.Equal(t, "3i + 4j + 0k (|v| = 5.0000)", report.Results[0].Value())

	_, err = e.Run(context.Background(), &File{Name: "bad", Precision: ptr(-1), Steps: []Step{{ID: "a", Op: OpAdd}}})
	require.ErrorIs(t, err, ErrInvalidPrecision)
}
