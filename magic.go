package preopen

// MagicLevel controls how aggressively a Mediator rewrites argument and
// environment strings into tokens.
//
// The automatic levels (ReadOnly and Auto) recognize a variety of path
// strings heuristically, which is convenient for ordinary command-line use.
// The heuristic includes protections against common hazards, but it cannot
// get everything right: it may fail to recognize a path, causing spurious
// PermissionDenied errors, or it may misidentify a string as a path,
// potentially granting access to a file the caller did not intend to expose.
// Callers that need certainty should use the explicit escape directives
// (%read:, %write:, ...) instead of relying on an automatic level.
type MagicLevel int

const (
	// None performs no substitution. Every argument passes through
	// verbatim and every open fails with PermissionDenied.
	None MagicLevel = iota

	// Escapes interprets %-prefixed directives only; everything else
	// passes through unchanged.
	Escapes

	// ReadOnly interprets directives and heuristically classified paths,
	// but grants only ReadFile access to the latter.
	ReadOnly

	// Auto interprets directives and heuristically classified paths,
	// granting Any access to the latter.
	Auto
)

func (l MagicLevel) String() string {
	switch l {
	case None:
		return "None"
	case Escapes:
		return "Escapes"
	case ReadOnly:
		return "ReadOnly"
	case Auto:
		return "Auto"
	default:
		return "MagicLevel(?)"
	}
}
