// Package namer assigns legal, globally unique JavaScript identifiers to
// named type definitions. Every name handed out during one generation pass
// comes from a single Namer, so references between definitions can be
// compared by value.
package namer

import (
	"fmt"
	"strings"
	"unicode"
)

// Name is an interned identifier handle. Two definitions reference each
// other through Name values rather than direct pointers, which is what lets
// the emitter handle mutually recursive types.
type Name string

// StyleFunc converts a raw candidate label into the casing convention of the
// output language.
type StyleFunc func(string) string

// Namer assigns identifiers. Implementations must be deterministic: the same
// sequence of Assign calls always yields the same sequence of Names.
type Namer interface {
	Assign(candidate string, style StyleFunc) (Name, error)
}

// maxAssignAttempts bounds the collision-suffix search. Hitting it means the
// caller is assigning a pathological number of identical labels.
const maxAssignAttempts = 10000

// Identifiers keeps a uniqueness table over all names assigned so far.
type Identifiers struct {
	taken map[Name]bool
}

// NewIdentifiers creates an empty identifier table.
func NewIdentifiers() *Identifiers {
	return &Identifiers{taken: make(map[Name]bool)}
}

// Assign legalizes candidate through style and disambiguates collisions with
// a numeric suffix (Person, Person2, Person3, ...).
func (ids *Identifiers) Assign(candidate string, style StyleFunc) (Name, error) {
	base := style(Legalize(candidate))
	if base == "" {
		base = "Empty"
	}

	name := Name(base)
	if !ids.taken[name] {
		ids.taken[name] = true
		return name, nil
	}

	for i := 2; i < maxAssignAttempts; i++ {
		name = Name(fmt.Sprintf("%s%d", base, i))
		if !ids.taken[name] {
			ids.taken[name] = true
			return name, nil
		}
	}

	return "", fmt.Errorf("namer: could not find a unique identifier for %q", candidate)
}

// Legalize strips characters that cannot appear in a JavaScript identifier,
// replacing each run of illegal characters with a single space so the style
// function sees word boundaries. A leading digit gets a "The" prefix.
func Legalize(s string) string {
	var result strings.Builder
	lastWasIllegal := false

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' {
			result.WriteRune(r)
			lastWasIllegal = false
		} else if !lastWasIllegal {
			result.WriteRune(' ')
			lastWasIllegal = true
		}
	}

	out := strings.TrimSpace(result.String())
	if out == "" {
		return out
	}
	if unicode.IsDigit([]rune(out)[0]) {
		out = "The " + out
	}
	return out
}

// PascalCase converts a space/underscore/hyphen-separated label to
// PascalCase, uppercasing known initialisms the way Go codegen does.
func PascalCase(s string) string {
	initialisms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"uri":  "URI",
		"uuid": "UUID",
		"api":  "API",
		"json": "JSON",
		"html": "HTML",
		"http": "HTTP",
	}

	parts := splitWords(s)
	for i, part := range parts {
		if upper, ok := initialisms[strings.ToLower(part)]; ok {
			parts[i] = upper
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, "")
}

// splitWords splits on spaces, underscores, hyphens, and lower-to-upper case
// transitions, dropping empty segments.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == ' ' || r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}
