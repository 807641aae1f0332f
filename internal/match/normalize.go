package match

import (
	"strings"
	"unicode"
)

// NormalizeKey trims and upper-cases a key. All attribute and row keys are
// compared in this form.
func NormalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeIdent reduces a key to its letters and digits, upper-cased, so
// that "MAX-TIME", "max_time" and "Max Time" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
