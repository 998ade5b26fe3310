// Package token mints the opaque identifiers a Mediator substitutes for
// host paths.
package token

import "github.com/google/uuid"

// Prefix is the literal text every token begins with. Callers may use it
// as a fast-path filter, but should otherwise treat a token as an opaque
// string up to whatever boundary their own text introduces.
const Prefix = "wasi-preopen."

// New returns a fresh token, unique for the lifetime of the process.
func New() string {
	return Prefix + uuid.New().String()
}
