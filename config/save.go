package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig writes settings to the global or local file.
type SaveConfig struct {
	// GlobalDir is the directory under ~/.config/ for the global file.
	GlobalDir string

	// GlobalFile is the global file name. Defaults to "config.yaml".
	GlobalFile string

	// LocalName is the local file name in the git root.
	LocalName string

	// ValidKeys lists the keys that may be saved. Nil accepts any key.
	ValidKeys []string
}

// SaveConfigFor returns a SaveConfig writing the files opts reads.
func SaveConfigFor(opts Options) SaveConfig {
	return SaveConfig{
		GlobalDir:  opts.GlobalDir,
		GlobalFile: opts.GlobalFile,
		LocalName:  opts.LocalName,
		ValidKeys:  opts.ValidKeys,
	}
}

func (c SaveConfig) globalFile() string {
	if c.GlobalFile != "" {
		return c.GlobalFile
	}
	return "config.yaml"
}

// GlobalPath returns the global settings file path.
func (c SaveConfig) GlobalPath() (string, error) {
	if c.GlobalDir == "" {
		return "", fmt.Errorf("global config directory not configured")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", c.GlobalDir, c.globalFile()), nil
}

func (c SaveConfig) validate(key string) error {
	if len(c.ValidKeys) > 0 && !contains(c.ValidKeys, key) {
		return fmt.Errorf("unknown setting: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidKeys, ", "))
	}
	return nil
}

// SaveGlobal saves key to the global settings file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	if err := c.validate(key); err != nil {
		return err
	}
	path, err := c.GlobalPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return update(path, 0o600, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// SaveLocal saves key to the local settings file in gitRoot.
func (c SaveConfig) SaveLocal(gitRoot, key, value string) error {
	if gitRoot == "" {
		return fmt.Errorf("git root not found")
	}
	if c.LocalName == "" {
		return fmt.Errorf("local config name not configured")
	}
	if err := c.validate(key); err != nil {
		return err
	}
	// Local settings are shared with the repository and stay readable.
	return update(filepath.Join(gitRoot, c.LocalName), 0o644, func(m map[string]interface{}) {
		m[key] = parseValue(value)
	})
}

// DeleteGlobalKey removes key from the global settings file. A missing file
// is not an error.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	path, err := c.GlobalPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return update(path, 0o600, func(m map[string]interface{}) {
		delete(m, key)
	})
}

func update(path string, perm os.FileMode, mutate func(map[string]interface{})) error {
	var existing map[string]interface{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}

	mutate(existing)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, perm) //nolint:gosec
}

// parseValue stores booleans as YAML booleans and comma lists as sequences.
func parseValue(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.Contains(value, ",") {
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	}
	return value
}
