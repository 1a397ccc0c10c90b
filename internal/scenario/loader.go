package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadJSON loads a scenario file from a JSON reader.
func LoadJSON(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadYAML loads a scenario file from a YAML reader.
func LoadYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile picks the decoder from the file extension and validates the result.
func LoadFile(path string) (*File, error) {
	var load func(io.Reader) (*File, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".json":
		load = LoadJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := load(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err = f.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return f, nil
}

// Validate checks the name, precision, step ids and that every operation is known and used
// with dimensions it supports. All problems are reported together.
func (f *File) Validate() error {
	var errs []error
	if f.Name == "" {
		errs = append(errs, ErrMissingName)
	}
	if f.Precision != nil && *f.Precision < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPrecision, *f.Precision))
	}

	seen := make(map[string]struct{}, len(f.Steps))
	for i, s := range f.Steps {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("step %d: %w", i, ErrMissingStepID))
		} else if _, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("step %q: %w", s.ID, ErrDuplicateStep))
		}
		seen[s.ID] = struct{}{}

		dims, ok := opDims[s.Op]
		if !ok {
			errs = append(errs, fmt.Errorf("step %q: %w: %q", s.ID, ErrUnknownOp, s.Op))
			continue
		}
		if !slices.Contains(dims, s.dims()) {
			errs = append(errs, fmt.Errorf("step %q: %w: %s in %dD", s.ID, ErrInvalidDims, s.Op, s.dims()))
		}
	}
	return errors.Join(errs...)
}
