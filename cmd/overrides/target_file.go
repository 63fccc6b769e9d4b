package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	clierrors "github.com/randalmurphal/overrides/errors"
	"github.com/randalmurphal/overrides/target"
)

// loadTarget reads a flat TOML table into typed slots. Without a path the
// target is open and takes whatever keys the defaults define.
func loadTarget(path string) (*target.Map, error) {
	m := target.NewMap()
	if path == "" {
		m.AllowUnknown = true
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clierrors.WrapTargetFileError(err, path)
	}

	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, clierrors.WrapTargetFileError(err, path)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := m.Define(k, values[k]); err != nil {
			return nil, clierrors.WrapTargetFileError(fmt.Errorf("key %s: %w", k, err), path)
		}
	}
	return m, nil
}

// saveTarget writes the slot values back to path as TOML.
func saveTarget(path string, m *target.Map) error {
	data, err := toml.Marshal(m.Values())
	if err != nil {
		return clierrors.WrapTargetFileError(err, path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return clierrors.WrapTargetFileError(err, path)
	}
	return nil
}
