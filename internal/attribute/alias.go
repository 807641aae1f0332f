package attribute

import "aicc-assembler/internal/match"

// aliasTable lists the accepted spellings of every known field in lookup
// priority order. The first spelling present in a cell wins.
var aliasTable = [...]struct {
	field Field
	keys  []string
}{
	{FieldMasteryScore, []string{"MASTERY_SCORE", "MS", "MASTERYSCORE"}},
	{FieldMaxTimeAllowed, []string{"MT", "MAXTIME", "MAX_TIME", "MAX_TIME_ALLOWED"}},
	{FieldTimeLimitAction, []string{"TIME_LIMIT_ACTION", "TL", "TLA"}},
	{FieldCompletionAction, []string{"CA"}},
	{FieldCompletionLessonStatus, []string{"CL"}},
	{FieldCompletionResultStatus, []string{"CR"}},
	{FieldMandatory, []string{"MANDATORY", "REQUIRED", "REQ"}},
	{FieldOptional, []string{"OPTIONAL"}},
}

// Attribute is one resolved attribute. Field is FieldUnknown for keys the
// alias table does not know, in which case Key is the verbatim key.
// For known fields Key is the alias that was actually used.
type Attribute struct {
	Field Field
	Key   string
	Value Value
}

// IsKnown returns true if the attribute maps to a canonical field.
func (a Attribute) IsKnown() bool {
	return a.Field != FieldUnknown
}

// KnownKeys returns every spelling in the alias table.
func KnownKeys() []string {
	var keys []string
	for _, e := range aliasTable {
		keys = append(keys, e.keys...)
	}

	return keys
}

// Lookup returns the field a single key maps to.
func Lookup(key string) Field {
	key = match.NormalizeKey(key)
	for _, e := range aliasTable {
		for _, k := range e.keys {
			if k == key {
				return e.field
			}
		}
	}

	return FieldUnknown
}

// Resolved is a cell after alias resolution: at most one attribute per known
// field plus every unrecognized key in cell order.
type Resolved struct {
	known   [FieldTotal]*Attribute
	unknown []Attribute
}

// Resolve matches the cell against the alias table.
func Resolve(c Cell) Resolved {
	var r Resolved

	for _, e := range aliasTable {
		for _, k := range e.keys {
			v, ok := c.Lookup(k)
			if !ok {
				continue
			}

			r.known[e.field] = &Attribute{Field: e.field, Key: k, Value: v}

			break
		}
	}

	for _, s := range c.Segments() {
		if Lookup(s.Key) != FieldUnknown {
			continue
		}

		r.unknown = append(r.unknown, Attribute{Field: FieldUnknown, Key: s.Key, Value: s.Value})
	}

	return r
}

// Get returns the attribute resolved for f.
func (r Resolved) Get(f Field) (Attribute, bool) {
	if f <= FieldUnknown || int(f) >= FieldTotal || r.known[f] == nil {
		return Attribute{}, false
	}

	return *r.known[f], true
}

// Has reports whether any alias of f was present.
func (r Resolved) Has(f Field) bool {
	_, ok := r.Get(f)
	return ok
}

// Known returns the resolved known attributes in canonical field order.
func (r Resolved) Known() []Attribute {
	var out []Attribute

	for _, a := range r.known {
		if a != nil {
			out = append(out, *a)
		}
	}

	return out
}

// Unknown returns the unrecognized attributes in cell order.
func (r Resolved) Unknown() []Attribute {
	return append([]Attribute(nil), r.unknown...)
}

// All returns known attributes followed by unknown ones.
func (r Resolved) All() []Attribute {
	return append(r.Known(), r.unknown...)
}

// HasCompletion reports whether any completion criteria field was present.
func (r Resolved) HasCompletion() bool {
	for f, a := range r.known {
		if a != nil && Field(f).IsCompletion() {
			return true
		}
	}

	return false
}
