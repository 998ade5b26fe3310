package preopen

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned, often wrapped, whenever a request names
// a string the Mediator has no Binding for, or names one with the wrong
// Access.
var ErrPermissionDenied = errors.New("preopen: permission denied")

// ClassifierError reports that an escape directive or argument could not
// be classified: an unrecognized "%"-prefixed directive, an environment
// variable name that is not valid Unicode, or an argument containing bytes
// that are not valid Unicode (always on Windows; elsewhere only below
// MagicLevel ReadOnly).
type ClassifierError struct {
	Arg    string
	Reason string
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("preopen: cannot classify %q: %s", e.Arg, e.Reason)
}

// NotAPreopenError reports that a string passed to an open method does not
// begin with any token the Mediator has ever issued.
type NotAPreopenError struct {
	Arg string
}

func (e *NotAPreopenError) Error() string {
	return fmt.Sprintf("preopen: %q is not a preopen token", e.Arg)
}

func (e *NotAPreopenError) Unwrap() error {
	return ErrPermissionDenied
}

// AccessError reports that a string names a real Binding, but the
// requested operation exceeds the Access the Binding was granted.
type AccessError struct {
	Arg     string
	Want    Access
	Granted Access
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("preopen: %q is bound for %s access, not %s", e.Arg, e.Granted, e.Want)
}

func (e *AccessError) Unwrap() error {
	return ErrPermissionDenied
}
