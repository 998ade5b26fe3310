package preopen

import (
	"context"
	"os"

	"github.com/pathcap/preopen/dirview"
)

// Open opens the file named by a token previously returned from one of the
// process methods, for reading. name must be, or begin with, a token bound
// for ReadFile or Any access; any suffix after the token is appended to
// the bound host path unchanged.
func (m *Mediator) Open(ctx context.Context, name string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hostPath, err := m.resolve(name, ReadFile)
	if err != nil {
		return nil, err
	}
	return os.Open(hostPath)
}

// Create opens the file named by name for writing, creating it if it does
// not exist and truncating it if it does. name must be, or begin with, a
// token bound for WriteFile or Any access.
func (m *Mediator) Create(ctx context.Context, name string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hostPath, err := m.resolve(name, WriteFile)
	if err != nil {
		return nil, err
	}
	return os.Create(hostPath)
}

// Append opens the file named by name for appending, creating it if it
// does not exist. name must be, or begin with, a token bound for
// AppendFile or Any access.
func (m *Mediator) Append(ctx context.Context, name string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hostPath, err := m.resolve(name, AppendFile)
	if err != nil {
		return nil, err
	}
	return os.OpenFile(hostPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}

// OpenDir opens a read-only view of the directory named by name. name
// must be, or begin with, a token bound for ReadOnlyDir, ReadWriteDir, or
// Any access.
func (m *Mediator) OpenDir(ctx context.Context, name string) (*dirview.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hostPath, err := m.resolve(name, ReadOnlyDir)
	if err != nil {
		return nil, err
	}
	return dirview.Open(hostPath, dirview.ReadOnly)
}

// OpenMutableDir opens a read-write view of the directory named by name.
// name must be, or begin with, a token bound for ReadWriteDir or Any
// access.
func (m *Mediator) OpenMutableDir(ctx context.Context, name string) (*dirview.View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hostPath, err := m.resolve(name, ReadWriteDir)
	if err != nil {
		return nil, err
	}
	return dirview.Open(hostPath, dirview.Full)
}

// resolve looks up the Binding whose token prefixes name, checks that it
// permits want, and reconstructs the host path by concatenating the
// binding's original path with whatever text in name followed the token.
func (m *Mediator) resolve(name string, want Access) (string, error) {
	if b, suffix, ok := m.table.Lookup(name, want); ok {
		return b.Original + suffix, nil
	}

	if b, ok := m.table.LookupToken(name); ok {
		return "", &AccessError{Arg: name, Want: want, Granted: b.Access}
	}

	return "", &NotAPreopenError{Arg: name}
}
