//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/vecmath/internal/observability/log"
	"github.com/zeusync/vecmath/internal/scenario"
)

func InitializeEvaluator(level log.Level, opts log.Options, cfg scenario.Config) (*scenario.Evaluator, error) {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		scenario.NewEvaluator,
	)
	return nil, nil
}
