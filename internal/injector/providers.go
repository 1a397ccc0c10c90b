package injector

import "github.com/zeusync/vecmath/internal/observability/log"

func ProvideLogger(level log.Level, opts log.Options) (*log.Logger, error) {
	return log.New(level, opts)
}
