package preopen

import "strings"

// Binding records that token stands in for the host path original, and
// that original may be accessed up to access. Bindings are created only by
// a Mediator's process methods and are never mutated or removed afterward.
type Binding struct {
	// Token is the opaque string that appears in translated strings in
	// place of Original.
	Token string

	// Original is the host path the token stands in for, in the host's
	// native string representation. It is not required to be valid
	// Unicode.
	Original string

	// Access is the operation the binding permits.
	Access Access
}

// Table is an append-only, insertion-ordered sequence of Bindings. Lookups
// are a linear scan for the first Binding whose Token prefixes the
// requested string and whose Access permits the requested operation.
type Table []Binding

// Add appends a new Binding and returns it.
func (t *Table) Add(token, original string, access Access) Binding {
	b := Binding{Token: token, Original: original, Access: access}
	*t = append(*t, b)
	return b
}

// Lookup finds the first Binding whose Token is a prefix of s and whose
// Access permits want, and reports the trailing suffix after the token. If
// no such Binding exists, found is false.
func (t Table) Lookup(s string, want Access) (b Binding, suffix string, found bool) {
	for _, b := range t {
		if !b.Access.Permits(want) {
			continue
		}
		if rest, ok := strings.CutPrefix(s, b.Token); ok {
			return b, rest, true
		}
	}
	return Binding{}, "", false
}

// LookupToken finds the first Binding whose Token is a prefix of s,
// regardless of Access. It is used to build a more informative error
// message when Lookup fails because of an access mismatch rather than a
// missing token.
func (t Table) LookupToken(s string) (b Binding, found bool) {
	for _, b := range t {
		if strings.HasPrefix(s, b.Token) {
			return b, true
		}
	}
	return Binding{}, false
}
