package scenario

import (
	"fmt"
	"runtime"
)

// Config holds evaluator settings.
type Config struct {
	// Precision is the number of decimals used to render magnitudes when a
	// file does not set its own.
	Precision int
	// Workers bounds how many files RunAll evaluates at once.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		Precision: 4,
		Workers:   runtime.NumCPU(),
	}
}

func (c Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Precision)
	}
	return nil
}
