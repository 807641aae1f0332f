package normalize

import "strings"

// Actions splits a time-limit action list on ',' or ';' into upper-cased
// tokens, keeping their order and dropping blanks. The result is never nil.
func Actions(raw string) []string {
	out := []string{}

	for _, tok := range strings.Split(strings.ReplaceAll(raw, ";", ","), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		out = append(out, strings.ToUpper(tok))
	}

	return out
}
