package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestResolver_Defaults(t *testing.T) {
	r := NewResolverWithPaths(DefaultOptions(), "", "")

	s := r.Resolve()

	if got := s.Get(KeyRoots); got != "." {
		t.Errorf("roots = %q, want %q", got, ".")
	}
	if got := s.Source(KeyRoots); got != SourceDefault {
		t.Errorf("source = %q, want %q", got, SourceDefault)
	}
	if s.Bool(KeyHideUnset) {
		t.Error("hide_unset should default to false")
	}
}

func TestResolver_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("OVERRIDES_ENV_FILE", "ci.env")

	s := NewResolverWithPaths(DefaultOptions(), "", "").Resolve()

	if got, src := s.GetWithSource(KeyEnvFile); got != "ci.env" || src != SourceEnv {
		t.Errorf("env_file = %q (%s), want ci.env (env)", got, src)
	}
}

func TestResolver_GlobalAndLocal(t *testing.T) {
	tmpDir := t.TempDir()

	global := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(global, []byte("format: json\nroots:\n  - /etc/app\n  - conf\nprefixes: db\n"), 0o644)

	local := filepath.Join(tmpDir, ".overrides.yaml")
	os.WriteFile(local, []byte("prefixes: [db, cache]\nhide_unset: true\n"), 0o644)

	s := NewResolverWithPaths(DefaultOptions(), global, local).Resolve()

	if got := s.List(KeyRoots); !reflect.DeepEqual(got, []string{"/etc/app", "conf"}) {
		t.Errorf("roots = %v", got)
	}
	if got := s.Source(KeyRoots); got != SourceGlobal {
		t.Errorf("roots source = %q, want global", got)
	}
	if got := s.List(KeyPrefixes); !reflect.DeepEqual(got, []string{"db", "cache"}) {
		t.Errorf("prefixes = %v, local should win", got)
	}
	if got := s.Source(KeyPrefixes); got != SourceLocal {
		t.Errorf("prefixes source = %q, want local", got)
	}
	if !s.Bool(KeyHideUnset) {
		t.Error("hide_unset should be true")
	}
	if got := s.Get(KeyFormat); got != "json" {
		t.Errorf("format = %q, want json", got)
	}
}

func TestResolver_Priority(t *testing.T) {
	tmpDir := t.TempDir()
	global := filepath.Join(tmpDir, "global.yaml")
	os.WriteFile(global, []byte("format: yaml\n"), 0o644)
	local := filepath.Join(tmpDir, "local.yaml")
	os.WriteFile(local, []byte("format: json\n"), 0o644)

	t.Setenv("OVERRIDES_FORMAT", "table")

	r := NewResolverWithPaths(DefaultOptions(), global, local)

	if got := r.Resolve().Get(KeyFormat); got != "table" {
		t.Errorf("format = %q, want %q (env should have highest priority)", got, "table")
	}

	s := r.ResolveWithFlags(map[string]string{KeyFormat: "json", KeyRoots: ""})
	if got, src := s.GetWithSource(KeyFormat); got != "json" || src != SourceFlag {
		t.Errorf("format = %q (%s), want json (flag)", got, src)
	}
	if got := s.Source(KeyRoots); got != SourceDefault {
		t.Errorf("empty flag should not override, roots source = %q", got)
	}
}

func TestResolver_InvalidFiles(t *testing.T) {
	tmpDir := t.TempDir()
	global := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(global, []byte("format: [unclosed\n"), 0o644)
	local := filepath.Join(tmpDir, "local.yaml")
	os.WriteFile(local, []byte("format: json\nbogus: 1\n"), 0o644)

	r := NewResolverWithPaths(DefaultOptions(), global, local)
	s := r.Resolve()

	if len(r.Warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(r.Warnings), r.Warnings)
	}
	if got := s.Get("bogus"); got != "" {
		t.Errorf("bogus = %q, unknown keys should be ignored", got)
	}
	if got := s.Get(KeyFormat); got != "json" {
		t.Errorf("format = %q, want json", got)
	}
}

func TestResolver_MissingFilesAreSilent(t *testing.T) {
	r := NewResolverWithPaths(DefaultOptions(), "/nonexistent/a.yaml", "/nonexistent/b.yaml")
	r.Resolve()

	if len(r.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", r.Warnings)
	}
}

func TestNewResolver_Paths(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	repo := t.TempDir()

	opts := DefaultOptions()
	opts.GitRootFinder = func(string) (string, error) { return repo, nil }
	r := NewResolver(opts)

	if got, want := r.GlobalPath(), filepath.Join(tmpHome, ".config", "overrides", "config.yaml"); got != want {
		t.Errorf("GlobalPath() = %q, want %q", got, want)
	}
	if got, want := r.LocalPath(), filepath.Join(repo, ".overrides.yaml"); got != want {
		t.Errorf("LocalPath() = %q, want %q", got, want)
	}
	if r.GitRoot() != repo {
		t.Errorf("GitRoot() = %q, want %q", r.GitRoot(), repo)
	}
}

func TestSettings_Keys(t *testing.T) {
	s := NewResolverWithPaths(DefaultOptions(), "", "").Resolve()

	if got := s.Keys(); !reflect.DeepEqual(got, []string{"env_file", "format", "hide_unset", "prefixes", "roots"}) {
		t.Errorf("Keys() = %v", got)
	}
	all := s.All()
	all[KeyRoots] = "changed"
	if s.Get(KeyRoots) != "." {
		t.Error("All() should return a copy")
	}
}

func TestSettings_List(t *testing.T) {
	s := &Settings{values: map[string]string{"k": " a, ,b ,"}}
	if got := s.List("k"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("List() = %v, want [a b]", got)
	}
	if got := s.List("missing"); len(got) != 0 {
		t.Errorf("List(missing) = %v, want empty", got)
	}
}

func TestFindGitRoot(t *testing.T) {
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "a", "b", "c")
	os.MkdirAll(nested, 0o755)
	os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o755)

	if root := findGitRoot(nested); root != tmpDir {
		t.Errorf("findGitRoot() = %q, want %q", root, tmpDir)
	}
}

func TestFindGitRoot_NotFound(t *testing.T) {
	if root := findGitRoot(t.TempDir()); root != "" {
		t.Errorf("findGitRoot() = %q, want empty", root)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{"x", "x"},
		{true, "true"},
		{3, "3"},
		{1.5, "1.5"},
		{[]interface{}{"a", 1, nil}, "a,1"},
		{map[string]interface{}{}, ""},
	}
	for _, tt := range tests {
		if got := toString(tt.in); got != tt.want {
			t.Errorf("toString(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
