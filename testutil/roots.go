package testutil

import (
	"errors"
	"io/fs"
)

// ErrBroken is returned by FailingFS.
var ErrBroken = errors.New("broken root")

// FailingFS is a file system whose every operation fails with Err.
type FailingFS struct {
	Err error
}

func (f FailingFS) err() error {
	if f.Err == nil {
		return ErrBroken
	}
	return f.Err
}

// Open implements fs.FS.
func (f FailingFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: f.err()}
}

// Stat implements fs.StatFS.
func (f FailingFS) Stat(name string) (fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: name, Err: f.err()}
}

// UnreadableFS reports files in Files as present but fails to read them.
type UnreadableFS struct {
	fs.StatFS
	Files map[string]bool
}

// Open implements fs.FS.
func (u UnreadableFS) Open(name string) (fs.File, error) {
	if u.Files[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrBroken}
	}
	return u.StatFS.Open(name)
}

// ReadFile implements fs.ReadFileFS.
func (u UnreadableFS) ReadFile(name string) ([]byte, error) {
	if u.Files[name] {
		return nil, &fs.PathError{Op: "read", Path: name, Err: ErrBroken}
	}
	return fs.ReadFile(u.StatFS, name)
}
