// Package env provides the sources that qualified override names are looked
// up in.
//
// An override for key "timeout" under prefix "db" is looked up by its
// qualified name "db.timeout". Sources differ in where that name is found:
//
//   - Map: an in-memory table, typically built from -D style assignments
//   - OS: the process environment, first verbatim, then as DB_TIMEOUT
//   - DotEnv: one or more .env files
//   - Chain: several sources, the first one holding the name wins
//
// A missing name is the normal case and is reported as ok == false.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lookup resolves a qualified name to an override value.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string) (string, bool)

// Lookup implements Lookup.
func (f LookupFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// Map is a Lookup over a fixed table of qualified names.
type Map map[string]string

// Lookup implements Lookup.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// None is a Lookup that never finds anything.
var None Lookup = Map(nil)

var replacer = strings.NewReplacer(".", "_", "-", "_")

// VarName converts a qualified name to environment variable form:
// "db.pool-size" becomes "DB_POOL_SIZE".
func VarName(name string) string {
	// Casers carry state and are not shared between goroutines.
	return cases.Upper(language.Und).String(replacer.Replace(name))
}

// OS returns a Lookup over the process environment. A name is tried verbatim
// first and then in VarName form. Names containing '-' are only tried
// verbatim, since VarName maps "db.pool-size" and "db.pool.size" to the same
// variable.
func OS() Lookup {
	return LookupFunc(func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		if strings.Contains(name, "-") {
			return "", false
		}
		return os.LookupEnv(VarName(name))
	})
}

// DotEnv reads the given .env files. Later files override earlier ones.
func DotEnv(paths ...string) (Map, error) {
	if len(paths) == 0 {
		return Map{}, nil
	}
	values, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("read env files %s: %w", strings.Join(paths, ", "), err)
	}
	return Map(values), nil
}

// Chain returns a Lookup that asks each source in turn and returns the first
// hit. Nil sources are skipped.
func Chain(sources ...Lookup) Lookup {
	return LookupFunc(func(name string) (string, bool) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			if v, ok := s.Lookup(name); ok {
				return v, true
			}
		}
		return "", false
	})
}

// ParseAssignments builds a Map from "name=value" strings. A leading "-D" is
// accepted and stripped. Later assignments to the same name win.
func ParseAssignments(assignments []string) (Map, error) {
	m := make(Map, len(assignments))
	for _, a := range assignments {
		a = strings.TrimPrefix(a, "-D")
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected name=value", a)
		}
		m[name] = value
	}
	return m, nil
}
