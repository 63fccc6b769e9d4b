package resource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Root is a named, read-only tree that resources are looked up in.
type Root struct {
	// Name identifies the root in refs and log output.
	Name string

	// FS holds the resources. Names are resolved relative to its top.
	FS fs.FS
}

// DirRoot returns a root backed by a directory on disk.
func DirRoot(dir string) Root {
	return Root{Name: dir, FS: os.DirFS(dir)}
}

// FSRoot returns a root backed by an arbitrary file system, such as an embed.FS.
func FSRoot(name string, fsys fs.FS) Root {
	return Root{Name: name, FS: fsys}
}

// Ref points at one resource found on one root.
type Ref struct {
	Root string
	Name string

	fsys fs.FS
}

// NewRef creates a ref for name inside fsys.
func NewRef(root string, fsys fs.FS, name string) Ref {
	return Ref{Root: root, Name: name, fsys: fsys}
}

// String returns "root:name".
func (r Ref) String() string {
	return r.Root + ":" + r.Name
}

// Open opens the referenced resource for reading.
func (r Ref) Open() (io.ReadCloser, error) {
	if r.fsys == nil {
		return nil, fmt.Errorf("open %s: %w", r, fs.ErrInvalid)
	}
	return r.fsys.Open(r.Name)
}

// ReadAll returns the full content of the referenced resource.
func (r Ref) ReadAll() ([]byte, error) {
	if r.fsys == nil {
		return nil, fmt.Errorf("read %s: %w", r, fs.ErrInvalid)
	}
	return fs.ReadFile(r.fsys, r.Name)
}

// Searcher finds every resource with the given name.
type Searcher interface {
	Search(name string) ([]Ref, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(name string) ([]Ref, error)

// Search implements Searcher.
func (f SearcherFunc) Search(name string) ([]Ref, error) {
	return f(name)
}

// SearchError reports a root that could not be searched for a name.
type SearchError struct {
	Root string
	Name string
	Err  error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %s for %s: %v", e.Root, e.Name, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Roots is an ordered list of roots searched front to back.
type Roots []Root

// Search implements Searcher. A root without the resource is skipped; a root
// that fails for any other reason aborts the search with a *SearchError.
func (rs Roots) Search(name string) ([]Ref, error) {
	if !fs.ValidPath(name) {
		return nil, &SearchError{Name: name, Err: fs.ErrInvalid}
	}

	var refs []Ref
	for _, root := range rs {
		if root.FS == nil {
			continue
		}
		info, err := fs.Stat(root.FS, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &SearchError{Root: root.Name, Name: name, Err: err}
		}
		if info.IsDir() {
			continue
		}
		refs = append(refs, NewRef(root.Name, root.FS, name))
	}
	return refs, nil
}
