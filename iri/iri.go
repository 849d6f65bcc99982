// Package iri provides the IRI/URI processing helpers the document model
// depends on: scheme extraction, absoluteness checks, RFC 3986 syntax
// validation, and reference resolution.
package iri

import (
	"fmt"
	"net/url"

	"github.com/fredbi/uri"
)

// Error represents an IRI resolution failure.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("IriError: %s", e.Message)
}

// GetScheme returns the scheme of the URI reference, or "" if the reference
// has none. A scheme is a leading ALPHA followed by ALPHA / DIGIT / "+" /
// "-" / "." characters, terminated by ":".
func GetScheme(ref string) string {
	for i, r := range ref {
		switch {
		case r == ':':
			if i == 0 {
				return ""
			}
			return ref[:i]
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return ""
		}
	}
	return ""
}

// IsAbsolute reports whether the URI reference is absolute, i.e. carries a
// scheme.
func IsAbsolute(ref string) bool {
	return GetScheme(ref) != ""
}

// MatchesURISyntax reports whether the string matches the RFC 3986 URI
// production (an absolute URI, with optional fragment).
func MatchesURISyntax(ref string) bool {
	return uri.IsURI(ref)
}

// MatchesURIRefSyntax reports whether the string matches the RFC 3986
// URI-reference production (absolute or relative).
func MatchesURIRefSyntax(ref string) bool {
	return uri.IsURIReference(ref)
}

// Absolutize resolves a URI reference against an absolute base URI per
// RFC 3986 section 5, returning the resulting absolute URI. The base must
// be absolute.
func Absolutize(ref, base string) (string, error) {
	if !IsAbsolute(base) {
		return "", &Error{Message: fmt.Sprintf("base URI %q is not absolute", base)}
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("invalid base URI %q: %v", base, err)}
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("invalid URI reference %q: %v", ref, err)}
	}
	return b.ResolveReference(r).String(), nil
}

// StripFragment returns the URI reference without its fragment component.
func StripFragment(ref string) string {
	for i, r := range ref {
		if r == '#' {
			return ref[:i]
		}
	}
	return ref
}
