package dom

import (
	"strings"
	"unicode"
)

// SplitQName splits a qualified name into its prefix and local name. The
// prefix is empty when the name has no colon.
func SplitQName(qualifiedName string) (prefix, localName string) {
	if idx := strings.Index(qualifiedName, ":"); idx >= 0 {
		return qualifiedName[:idx], qualifiedName[idx+1:]
	}
	return "", qualifiedName
}

// IsNCName reports whether the string is a non-colonized XML name.
func IsNCName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !isNCNameChar(r) {
			return false
		}
	}
	return true
}

// IsQName reports whether the string is a qualified XML name: an NCName
// optionally preceded by an NCName prefix and a single colon.
func IsQName(name string) bool {
	prefix, local := SplitQName(name)
	if strings.Contains(name, ":") && !IsNCName(prefix) {
		return false
	}
	return IsNCName(local)
}

func isNCNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '.' || r == '-' || r == '_' ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Nl, r)
}
