// Document id derivation.
//
// An id is derived once from the title at creation time and doubles as the
// filename stem. Derivation is pure and idempotent: running DeriveID on an
// id returns it unchanged. Distinct titles may collapse to the same id (for
// example "a b" and "A-B"); the later write replaces the earlier file.
package promptflow

import (
	"strings"
	"unicode"
)

// DeriveID maps a title to a filename-safe id. ASCII letters and digits
// are kept and lower-cased, '-' and '_' are kept, any whitespace becomes
// '-', everything else becomes '_', and leading or trailing '-' and '_' are
// trimmed. The result only contains [a-z0-9_-] and may be empty.
func DeriveID(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteByte('-')
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "-_")
}

// idForTitle is DeriveID with a deterministic fallback for titles that
// derive to nothing (pure punctuation, non-Latin scripts).
func idForTitle(title string) string {
	if id := DeriveID(title); id != "" {
		return id
	}
	return "prompt-" + fingerprint(title)[:8]
}

// validID reports whether id is usable as a filename stem inside a
// collection directory. Ids of hand-placed files may contain any character
// other than a path separator.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && !strings.ContainsRune(id, 0)
}
