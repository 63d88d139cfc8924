// Package strcase converts accessor field names to the lowerCamel casing
// the browser-side engine expects.
package strcase

import "strings"

// CamelAndLower converts a snake_case or CamelCase name to lowerCamel.
//
// Underscores are removed and the following character is upper-cased; the
// first character of the result is always lower-cased. Names that are
// already lowerCamel pass through unchanged.
func CamelAndLower(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	upperNext := false
	for _, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
