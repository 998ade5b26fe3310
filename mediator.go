package preopen

import (
	"strings"
	"unicode/utf8"

	"github.com/pathcap/preopen/token"
)

// Mediator rewrites argument and environment strings into opaque tokens,
// recording a Binding for each substitution it makes, and later reverses
// those substitutions in output written through its Writer.
//
// A Mediator is not safe for concurrent process/Process* calls: process
// methods mutate the binding table. Open, Stdout, and Stderr only read
// the table once sealed and are safe to call concurrently with each other
// once processing has finished.
type Mediator struct {
	level MagicLevel
	table Table
}

// New returns an empty Mediator that will substitute paths according to
// level.
func New(level MagicLevel) *Mediator {
	return &Mediator{level: level}
}

// ProcessArgs translates each of args, returning the translated argument
// list in order. It is equivalent to calling ProcessArgsOS with strings
// that are already valid Unicode.
func (m *Mediator) ProcessArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		translated, err := m.process(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}
	return out, nil
}

// ProcessArgsOS translates each of args the same way ProcessArgs does, but
// additionally tolerates a string containing ill-formed Unicode on POSIX
// platforms: at MagicLevel Auto or ReadOnly it is treated as an opaque
// path and replaced outright, and at lower levels it is rejected with a
// ClassifierError. On Windows ill-formed strings are always rejected,
// since Windows filenames are well-formed UTF-16 and a string that fails
// to decode almost certainly isn't meant to be one.
func (m *Mediator) ProcessArgsOS(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		translated, err := m.processOS(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}
	return out, nil
}

// ProcessVars translates the value of each key/value pair in envs,
// leaving keys untouched, and returns the translated pairs in order.
func (m *Mediator) ProcessVars(envs [][2]string) ([][2]string, error) {
	out := make([][2]string, 0, len(envs))
	for _, kv := range envs {
		translated, err := m.process(kv[1])
		if err != nil {
			return nil, err
		}
		out = append(out, [2]string{kv[0], translated})
	}
	return out, nil
}

// ProcessVarsOS translates the value of each key/value pair the way
// ProcessVars does, but accepts values containing ill-formed Unicode on
// POSIX the way ProcessArgsOS does. The key of every pair must already be
// valid Unicode; a key that is not produces a ClassifierError, since an
// environment variable name containing ill-formed bytes can never be
// looked up or set through Go's os package in the first place.
func (m *Mediator) ProcessVarsOS(envs [][2]string) ([][2]string, error) {
	out := make([][2]string, 0, len(envs))
	for _, kv := range envs {
		if !utf8.ValidString(kv[0]) {
			return nil, &ClassifierError{
				Arg:    kv[0],
				Reason: "environment variable name contains ill-formed Unicode",
			}
		}
		translated, err := m.processOS(kv[1])
		if err != nil {
			return nil, err
		}
		out = append(out, [2]string{kv[0], translated})
	}
	return out, nil
}

// processOS applies process to s when s is valid Unicode. Go strings have
// no notion of "ill-formed" the way Rust's OsString does: an arbitrary
// byte sequence is a perfectly ordinary Go string. processOS nonetheless
// preserves the original's distinction between well-formed and
// ill-formed Unicode content, since callers porting code from an
// OsString-based platform still need the same fallback behavior for
// strings that happen not to be valid UTF-8.
func (m *Mediator) processOS(s string) (string, error) {
	if utf8.ValidString(s) {
		return m.process(s)
	}

	if isWindows {
		return "", &ClassifierError{Arg: s, Reason: "ill-formed strings are not permitted"}
	}

	var access Access
	switch m.level {
	case Auto:
		access = Any
	case ReadOnly:
		access = ReadFile
	default:
		return "", &ClassifierError{Arg: s, Reason: "ill-formed strings require a greater magic level"}
	}

	return m.bind(s, access), nil
}

// process implements the substitution pipeline for a single string: escape
// directives, then (at ReadOnly or Auto) the colon-list and "key=value"
// heuristics, then a bare IsLikelyPath check.
func (m *Mediator) process(arg string) (string, error) {
	if m.level >= Escapes {
		if rest, ok := strings.CutPrefix(arg, "%"); ok {
			return m.processEscape(rest)
		}

		if m.level >= ReadOnly {
			defaultAccess := ReadFile
			if m.level >= Auto {
				defaultAccess = Any
			}

			if strings.ContainsRune(arg, ':') {
				parts := strings.Split(arg, ":")
				allLikely := true
				for _, p := range parts {
					if !IsLikelyPath(p) {
						allLikely = false
						break
					}
				}
				if allLikely {
					bound := make([]string, len(parts))
					for i, p := range parts {
						bound[i] = m.bind(p, defaultAccess)
					}
					return strings.Join(bound, ":"), nil
				}
				return arg, nil
			}

			if eq := strings.IndexByte(arg, '='); eq >= 0 {
				prefix, suffix := arg[:eq+1], arg[eq+1:]
				if !strings.ContainsRune(prefix, '/') && IsLikelyPath(suffix) {
					return prefix + m.bind(suffix, defaultAccess), nil
				}
			}

			if IsLikelyPath(arg) {
				return m.bind(arg, defaultAccess), nil
			}
		}
	}

	return arg, nil
}

// bind splits any recognized extension off s, binds the stem to a fresh
// token at access, and returns the token with the extension reattached.
func (m *Mediator) bind(s string, access Access) string {
	stem, ext := SplitExtension(s)
	tok := token.New()
	m.table.Add(tok, stem, access)
	return tok + ext
}
