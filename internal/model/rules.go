package model

import "aicc-assembler/internal/match"

// Rule is one key/value pair kept from an attribute cell. HasValue is false
// when the key was written without '='.
type Rule struct {
	Key      string `yaml:"key"`
	Value    string `yaml:"value,omitempty"`
	HasValue bool   `yaml:"has_value"`
}

// Rules is an ordered mapping with unique keys.
type Rules []Rule

// Get returns the rule stored under key, ignoring case.
func (r Rules) Get(key string) (Rule, bool) {
	key = match.NormalizeKey(key)
	for _, rule := range r {
		if rule.Key == key {
			return rule, true
		}
	}

	return Rule{}, false
}

// Keys returns the keys in order.
func (r Rules) Keys() []string {
	keys := make([]string, 0, len(r))
	for _, rule := range r {
		keys = append(keys, rule.Key)
	}

	return keys
}

// With returns r plus the given rule, unless its key is already present.
// The first occurrence of a key wins.
func (r Rules) With(rule Rule) Rules {
	rule.Key = match.NormalizeKey(rule.Key)
	if rule.Key == "" {
		return r
	}

	if _, ok := r.Get(rule.Key); ok {
		return r
	}

	return append(r, rule)
}

// Clone returns a copy of r. A nil input stays nil.
func (r Rules) Clone() Rules {
	if r == nil {
		return nil
	}

	return append(Rules{}, r...)
}
