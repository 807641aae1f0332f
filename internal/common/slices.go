package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Find returns the index of the first element matching pred, or -1.
func Find[S ~[]E, E any](s S, pred func(*E) bool) int {
	for i := range s {
		if pred(&s[i]) {
			return i
		}
	}

	return -1
}

// FindOr returns the index of the first element matching pred. When nothing
// matches it falls back to the first element; -1 means the slice is empty.
func FindOr[S ~[]E, E any](s S, pred func(*E) bool) int {
	if i := Find(s, pred); i >= 0 {
		return i
	}

	if len(s) == 0 {
		return -1
	}

	return 0
}
