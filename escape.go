package preopen

import "strings"

// processEscape interprets the text following a leading "%" as one of the
// recognized directives: %verbatim:, %read:, %write:, %append:, %dir:, or
// %mutable-dir:. Any other directive is rejected, since a bare leading
// "%" would otherwise silently swallow whatever special meaning a future
// directive might claim.
func (m *Mediator) processEscape(rest string) (string, error) {
	if verbatim, ok := strings.CutPrefix(rest, "verbatim:"); ok {
		return verbatim, nil
	}
	if path, ok := strings.CutPrefix(rest, "read:"); ok {
		return m.bind(path, ReadFile), nil
	}
	if path, ok := strings.CutPrefix(rest, "write:"); ok {
		return m.bind(path, WriteFile), nil
	}
	if path, ok := strings.CutPrefix(rest, "append:"); ok {
		return m.bind(path, AppendFile), nil
	}
	if path, ok := strings.CutPrefix(rest, "dir:"); ok {
		return m.bind(path, ReadOnlyDir), nil
	}
	if path, ok := strings.CutPrefix(rest, "mutable-dir:"); ok {
		return m.bind(path, ReadWriteDir), nil
	}
	return "", &ClassifierError{
		Arg:    "%" + rest,
		Reason: `arguments beginning with "%" have special meanings; prepend "%verbatim:" to pass one through literally`,
	}
}
