package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/overrides/env"
)

// Setting keys understood by the overrides command.
const (
	KeyFormat    = "format"
	KeyRoots     = "roots"
	KeyPrefixes  = "prefixes"
	KeyEnvFile   = "env_file"
	KeyHideUnset = "hide_unset"
)

// Keys lists every valid setting key.
var Keys = []string{KeyFormat, KeyRoots, KeyPrefixes, KeyEnvFile, KeyHideUnset}

// Defaults returns the built-in setting values. An empty format means the
// command picks one based on its output stream.
func Defaults() map[string]string {
	return map[string]string{
		KeyFormat:    "",
		KeyRoots:     ".",
		KeyPrefixes:  "",
		KeyEnvFile:   "",
		KeyHideUnset: "false",
	}
}

// Options configures a settings Resolver.
type Options struct {
	// EnvPrefix is prepended to the upper-cased key for environment lookup:
	// with "OVERRIDES_", key "env_file" is read from OVERRIDES_ENV_FILE.
	EnvPrefix string

	// GlobalDir is the directory under ~/.config/ holding the global file.
	GlobalDir string

	// GlobalFile is the global file name. Defaults to "config.yaml".
	GlobalFile string

	// LocalName is the file name of the local settings in the git root.
	LocalName string

	// Defaults provides the lowest-priority values.
	Defaults map[string]string

	// ValidKeys restricts the keys read from files. Nil accepts any key.
	ValidKeys []string

	// GitRootFinder locates the git root. Defaults to walking up from the
	// working directory looking for .git.
	GitRootFinder func(startDir string) (string, error)

	// Logger receives warnings about unreadable files.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the overrides command.
func DefaultOptions() Options {
	return Options{
		EnvPrefix: "OVERRIDES_",
		GlobalDir: "overrides",
		LocalName: ".overrides.yaml",
		Defaults:  Defaults(),
		ValidKeys: Keys,
	}
}

func (o Options) globalFile() string {
	if o.GlobalFile != "" {
		return o.GlobalFile
	}
	return "config.yaml"
}

// Resolver resolves settings from defaults, files and the environment.
type Resolver struct {
	opts       Options
	globalPath string
	localPath  string
	gitRoot    string

	// Warnings collects non-fatal issues found while resolving.
	Warnings []string
}

// NewResolver creates a resolver, locating the global file under the user's
// home and the local file in the git root.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{opts: opts}

	finder := opts.GitRootFinder
	if finder == nil {
		finder = func(dir string) (string, error) { return findGitRoot(dir), nil }
	}
	if root, err := finder("."); err == nil && root != "" {
		r.gitRoot = root
		if opts.LocalName != "" {
			r.localPath = filepath.Join(root, opts.LocalName)
		}
	}

	if opts.GlobalDir != "" {
		if home, err := os.UserHomeDir(); err == nil {
			r.globalPath = filepath.Join(home, ".config", opts.GlobalDir, opts.globalFile())
		}
	}

	return r
}

// NewResolverWithPaths creates a resolver reading the given files.
func NewResolverWithPaths(opts Options, globalPath, localPath string) *Resolver {
	return &Resolver{
		opts:       opts,
		globalPath: globalPath,
		localPath:  localPath,
	}
}

func (r *Resolver) logger() *slog.Logger {
	if r.opts.Logger == nil {
		return slog.Default()
	}
	return r.opts.Logger
}

func (r *Resolver) warn(msg string, args ...any) {
	r.Warnings = append(r.Warnings, msg)
	r.logger().Warn(msg, args...)
}

// Settings holds resolved values and where each came from.
type Settings struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for key, or "" when unset.
func (s *Settings) Get(key string) string {
	return s.values[key]
}

// Source returns where key's value came from.
func (s *Settings) Source(key string) Source {
	return s.sources[key]
}

// GetWithSource returns both the value and its source.
func (s *Settings) GetWithSource(key string) (string, Source) {
	return s.values[key], s.sources[key]
}

// List splits a comma-separated value, dropping empty items.
func (s *Settings) List(key string) []string {
	var out []string
	for _, item := range strings.Split(s.values[key], ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Bool parses key as a bool. Unparseable values are false.
func (s *Settings) Bool(key string) bool {
	b, _ := strconv.ParseBool(s.values[key])
	return b
}

// All returns a copy of every value.
func (s *Settings) All() map[string]string {
	result := make(map[string]string, len(s.values))
	for k, v := range s.values {
		result[k] = v
	}
	return result
}

// Keys returns every key in sorted order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve merges every source.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Settings {
	s := &Settings{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	for key, value := range r.opts.Defaults {
		s.values[key] = value
		s.sources[key] = SourceDefault
	}
	r.applyFile(s, r.globalPath, SourceGlobal)
	r.applyFile(s, r.localPath, SourceLocal)
	r.applyEnv(s)

	return s
}

// ResolveWithFlags resolves settings and then applies non-empty flag values.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Settings {
	s := r.Resolve()
	for key, value := range flags {
		if value != "" {
			s.values[key] = value
			s.sources[key] = SourceFlag
		}
	}
	return s
}

func (r *Resolver) applyFile(s *Settings, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return // missing files are normal
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err),
			slog.String("path", path))
		return
	}

	for key, value := range parsed {
		if len(r.opts.ValidKeys) > 0 && !contains(r.opts.ValidKeys, key) {
			r.warn(fmt.Sprintf("ignoring unknown setting %q in %s", key, path),
				slog.String("path", path))
			continue
		}
		if str := toString(value); str != "" {
			s.values[key] = str
			s.sources[key] = source
		}
	}
}

func (r *Resolver) applyEnv(s *Settings) {
	if r.opts.EnvPrefix == "" {
		return
	}

	known := make(map[string]bool)
	for k := range r.opts.Defaults {
		known[k] = true
	}
	for k := range s.values {
		known[k] = true
	}

	for key := range known {
		if value := os.Getenv(r.opts.EnvPrefix + env.VarName(key)); value != "" {
			s.values[key] = value
			s.sources[key] = SourceEnv
		}
	}
}

// GitRoot returns the detected git root.
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the global settings file path.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the local settings file path.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if str := toString(item); str != "" {
				items = append(items, str)
			}
		}
		return strings.Join(items, ",")
	default:
		return ""
	}
}

// findGitRoot walks up from startDir looking for a .git directory.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
