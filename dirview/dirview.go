// Package dirview wraps os.Root to give a capability-scoped view of a
// single directory tree, the way a preopened directory descriptor would
// on a WASI host: every path resolved through a View is confined to the
// directory it was opened on, and a ReadOnly View additionally rejects
// any operation that would create, remove, or modify an entry.
package dirview

import (
	"errors"
	"io/fs"
	"os"
)

// Kind selects how permissive a View is.
type Kind int

const (
	// ReadOnly permits only operations that read the directory tree.
	ReadOnly Kind = iota
	// Full permits unrestricted operations within the directory tree.
	Full
)

// ErrReadOnly is returned by a mutating method on a ReadOnly View.
var ErrReadOnly = errors.New("dirview: directory is read-only")

// View is a directory tree scoped to the directory it was opened on,
// backed by an *os.Root.
type View struct {
	root *os.Root
	kind Kind
}

// Open opens the directory at path and returns a View of kind over it.
func Open(path string, kind Kind) (*View, error) {
	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, err
	}
	return &View{root: root, kind: kind}, nil
}

// Kind reports whether v is ReadOnly or Full.
func (v *View) Kind() Kind {
	return v.kind
}

// Close releases the directory handle underlying v.
func (v *View) Close() error {
	return v.root.Close()
}

// Open opens the named file within the view for reading.
func (v *View) Open(name string) (fs.File, error) {
	return v.root.Open(name)
}

// Stat returns file info for the named entry within the view.
func (v *View) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(v.root.FS(), name)
}

// OpenFile opens the named file within the view with the given flag and
// permission, as os.OpenFile does. A flag requesting write access is
// rejected with ErrReadOnly unless v is Full.
func (v *View) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	if v.kind == ReadOnly && flag != os.O_RDONLY {
		return nil, ErrReadOnly
	}
	return v.root.OpenFile(name, flag, perm)
}

// Mkdir creates a directory within the view. It fails with ErrReadOnly
// unless v is Full.
func (v *View) Mkdir(name string, perm os.FileMode) error {
	if v.kind == ReadOnly {
		return ErrReadOnly
	}
	return v.root.Mkdir(name, perm)
}

// Remove removes the named entry within the view. It fails with
// ErrReadOnly unless v is Full.
func (v *View) Remove(name string) error {
	if v.kind == ReadOnly {
		return ErrReadOnly
	}
	return v.root.Remove(name)
}
