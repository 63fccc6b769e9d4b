package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var saved map[string]interface{}
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return saved
}

func TestSaveConfig_SaveGlobal(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	cfg := SaveConfigFor(DefaultOptions())
	configPath := filepath.Join(tmpHome, ".config", "overrides", "config.yaml")

	t.Run("creates config file", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyFormat, "json"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}
		if saved := readYAML(t, configPath); saved[KeyFormat] != "json" {
			t.Errorf("format = %v, want json", saved[KeyFormat])
		}
	})

	t.Run("updates existing config", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyHideUnset, "true"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}
		saved := readYAML(t, configPath)
		if saved[KeyFormat] != "json" {
			t.Errorf("format = %v, should be preserved", saved[KeyFormat])
		}
		if saved[KeyHideUnset] != true {
			t.Errorf("hide_unset = %v, want true", saved[KeyHideUnset])
		}
	})

	t.Run("stores lists as sequences", func(t *testing.T) {
		if err := cfg.SaveGlobal(KeyRoots, "conf, /etc/app"); err != nil {
			t.Fatalf("SaveGlobal() error = %v", err)
		}
		roots, ok := readYAML(t, configPath)[KeyRoots].([]interface{})
		if !ok || len(roots) != 2 || roots[0] != "conf" || roots[1] != "/etc/app" {
			t.Errorf("roots = %#v", roots)
		}

		s := NewResolverWithPaths(DefaultOptions(), configPath, "").Resolve()
		if got := s.Get(KeyRoots); got != "conf,/etc/app" {
			t.Errorf("resolved roots = %q", got)
		}
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		err := cfg.SaveGlobal("bogus", "x")
		if err == nil || !strings.Contains(err.Error(), "unknown setting: bogus") {
			t.Errorf("SaveGlobal(bogus) error = %v", err)
		}
	})

	t.Run("deletes key", func(t *testing.T) {
		if err := cfg.DeleteGlobalKey(KeyFormat); err != nil {
			t.Fatalf("DeleteGlobalKey() error = %v", err)
		}
		if _, ok := readYAML(t, configPath)[KeyFormat]; ok {
			t.Error("format should be deleted")
		}
	})
}

func TestSaveConfig_DeleteGlobalKey_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := SaveConfigFor(DefaultOptions()).DeleteGlobalKey(KeyFormat); err != nil {
		t.Errorf("DeleteGlobalKey() error = %v, want nil", err)
	}
}

func TestSaveConfig_SaveLocal(t *testing.T) {
	repo := t.TempDir()
	cfg := SaveConfigFor(DefaultOptions())

	if err := cfg.SaveLocal(repo, KeyPrefixes, "db,cache"); err != nil {
		t.Fatalf("SaveLocal() error = %v", err)
	}

	path := filepath.Join(repo, ".overrides.yaml")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("perm = %o, want 644", perm)
	}

	s := NewResolverWithPaths(DefaultOptions(), "", path).Resolve()
	if got, src := s.GetWithSource(KeyPrefixes); got != "db,cache" || src != SourceLocal {
		t.Errorf("prefixes = %q (%s)", got, src)
	}
}

func TestSaveConfig_SaveLocal_Errors(t *testing.T) {
	cfg := SaveConfigFor(DefaultOptions())

	if err := cfg.SaveLocal("", KeyFormat, "json"); err == nil {
		t.Error("SaveLocal() without git root should fail")
	}
	if err := (SaveConfig{}).SaveLocal(t.TempDir(), KeyFormat, "json"); err == nil {
		t.Error("SaveLocal() without local name should fail")
	}
	if err := cfg.SaveLocal(t.TempDir(), "bogus", "x"); err == nil {
		t.Error("SaveLocal(bogus) should fail")
	}
}

func TestSaveConfig_GlobalPath_NotConfigured(t *testing.T) {
	if _, err := (SaveConfig{}).GlobalPath(); err == nil {
		t.Error("GlobalPath() without directory should fail")
	}
}

func TestParseValue(t *testing.T) {
	if parseValue("TRUE") != true || parseValue("false") != false {
		t.Error("booleans should be parsed")
	}
	if parseValue("plain") != "plain" {
		t.Error("plain strings should be kept")
	}
	items, ok := parseValue("a,,b").([]string)
	if !ok || len(items) != 2 {
		t.Errorf("parseValue(a,,b) = %#v", items)
	}
}
