package groups

import "strings"

// Signature is the result of classifying a display name as a template
// instantiation. SpecializationKey is nil when the argument list is empty.
type Signature struct {
	GroupName         string
	SpecializationKey *string
}

// ParseSignature reports whether a display name looks like a C++-style
// template instantiation and, if so, recovers the base template name and the
// trimmed text between the outermost matching angle brackets.
//
// This is a heuristic single-pass matcher, not a demangler. Ambiguous or
// malformed names degrade to "not a template": unbalanced brackets, an empty
// base name, or a `<` that does not follow an identifier character (or one of
// `>`, `]`, `)`) all return false. `operator<<` falls out naturally because
// its brackets never balance.
func ParseSignature(name string) (Signature, bool) {
	open := strings.IndexByte(name, '<')
	if open < 0 {
		return Signature{}, false
	}

	groupName := strings.TrimSpace(name[:open])
	if groupName == "" {
		return Signature{}, false
	}

	// Guard against comparison-like tokens: `a < b` is not an instantiation.
	if !templateOpenerFollows(name[open-1]) {
		return Signature{}, false
	}

	depth := 0
	for i := open; i < len(name); i++ {
		switch name[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				sig := Signature{GroupName: groupName}
				if args := strings.TrimSpace(name[open+1 : i]); args != "" {
					sig.SpecializationKey = &args
				}
				return sig, true
			}
		}
	}

	// Brackets never balanced; fail safe.
	return Signature{}, false
}

func templateOpenerFollows(c byte) bool {
	if isIdentChar(c) {
		return true
	}
	return c == '>' || c == ']' || c == ')'
}

func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}
