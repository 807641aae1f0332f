package normalize

import "strings"

// Affirmative reads a yes/no style flag. Unrecognized text counts as true
// unless it starts with 'n' or '0', so a bare flag with no value is true.
func Affirmative(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch s {
	case "y", "yes", "true", "1", "required", "mandatory":
		return true
	case "n", "no", "false", "0", "optional":
		return false
	}

	return !strings.HasPrefix(s, "n") && !strings.HasPrefix(s, "0")
}
