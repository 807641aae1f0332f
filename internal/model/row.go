package model

import (
	"sort"

	"aicc-assembler/internal/match"
)

// Row is one row of a generic table (prerequisites, objective relations)
// with case-insensitive column lookup. Column names keep their original
// spelling; the first spelling of a column wins.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow builds a row from a map. Columns are ordered by name since map
// order carries no meaning.
func NewRow(m map[string]string) Row {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}

	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, k := range names {
		pairs = append(pairs, k, m[k])
	}

	return RowOf(pairs...)
}

// RowOf builds a row from alternating column/value strings, keeping order.
// A trailing column without a value gets "".
func RowOf(pairs ...string) Row {
	r := Row{values: make(map[string]string, len(pairs)/2)}

	for i := 0; i < len(pairs); i += 2 {
		val := ""
		if i+1 < len(pairs) {
			val = pairs[i+1]
		}

		norm := match.NormalizeKey(pairs[i])
		if norm == "" {
			continue
		}

		if _, dup := r.values[norm]; dup {
			continue
		}

		r.keys = append(r.keys, pairs[i])
		r.values[norm] = val
	}

	return r
}

// Get returns the value of a column, ignoring case and surrounding space.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.values[match.NormalizeKey(column)]
	return v, ok
}

// Value returns the value of a column or "".
func (r Row) Value(column string) string {
	v, _ := r.Get(column)
	return v
}

// Keys returns the column names in order, original spelling.
func (r Row) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.keys)
}

// Map returns the row as a plain map keyed by original column names.
func (r Row) Map() map[string]string {
	out := make(map[string]string, len(r.keys))
	for _, k := range r.keys {
		out[k] = r.values[match.NormalizeKey(k)]
	}

	return out
}

// Clone returns an independent copy.
func (r Row) Clone() Row {
	out := Row{
		keys:   append([]string(nil), r.keys...),
		values: make(map[string]string, len(r.values)),
	}
	for k, v := range r.values {
		out.values[k] = v
	}

	return out
}

// MarshalYAML renders the row as a mapping.
func (r Row) MarshalYAML() (any, error) {
	return r.Map(), nil
}
