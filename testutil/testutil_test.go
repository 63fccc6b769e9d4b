package testutil

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestProperties(t *testing.T) {
	got := Properties(map[string]string{"b": "2", "a": "1"})
	if got != "a=1\nb=2\n" {
		t.Errorf("Properties() = %q, want %q", got, "a=1\nb=2\n")
	}
}

func TestMapRoot(t *testing.T) {
	root := MapRoot(map[string]string{"x.properties": "k=v\n"})

	data, err := fs.ReadFile(root, "x.properties")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "k=v\n" {
		t.Errorf("content = %q, want %q", data, "k=v\n")
	}
}

func TestTempRoot(t *testing.T) {
	dir := TempRoot(t, map[string]string{
		"a.properties":        "a=1\n",
		"nested/b.properties": "b=2\n",
	})

	for _, name := range []string{"a.properties", "nested/b.properties"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("file %s does not exist: %v", name, err)
		}
	}
}

func TestTempFileString(t *testing.T) {
	path := TempFileString(t, "target.toml", "timeout = 1\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "timeout = 1\n" {
		t.Errorf("content = %q", data)
	}
}

func TestFailingFS(t *testing.T) {
	_, err := fs.Stat(FailingFS{}, "anything")
	if !errors.Is(err, ErrBroken) {
		t.Errorf("Stat() error = %v, want ErrBroken", err)
	}

	custom := errors.New("custom")
	_, err = FailingFS{Err: custom}.Open("anything")
	if !errors.Is(err, custom) {
		t.Errorf("Open() error = %v, want custom", err)
	}
}

func TestUnreadableFS(t *testing.T) {
	u := UnreadableFS{
		StatFS: MapRoot(map[string]string{"bad": "x", "good": "y"}),
		Files:  map[string]bool{"bad": true},
	}

	if _, err := fs.Stat(u, "bad"); err != nil {
		t.Errorf("Stat(bad) error = %v, want nil", err)
	}
	if _, err := fs.ReadFile(u, "bad"); !errors.Is(err, ErrBroken) {
		t.Errorf("ReadFile(bad) error = %v, want ErrBroken", err)
	}
	if data, err := fs.ReadFile(u, "good"); err != nil || string(data) != "y" {
		t.Errorf("ReadFile(good) = %q, %v", data, err)
	}
}

func TestLogRecorder(t *testing.T) {
	rec, logger := NewLogRecorder()

	logger.With("pass", "p1").Warn("something failed", "key", "timeout")
	logger.Debug("detail")

	records := rec.Records()
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Attrs["pass"] != "p1" || records[0].Attrs["key"] != "timeout" {
		t.Errorf("attrs = %v", records[0].Attrs)
	}
	if got := rec.Messages(slog.LevelWarn); len(got) != 1 || got[0] != "something failed" {
		t.Errorf("warn messages = %v", got)
	}
}
