package attribute

import (
	"strings"

	"aicc-assembler/internal/match"
)

const (
	segmentSep = ";"
	pairSep    = "="
	altSep     = ","
)

// Value is an attribute value. A key written without '=' has Present set
// to false, which is not the same as a key with an empty value.
type Value struct {
	Text    string
	Present bool
}

// Some returns a present value.
func Some(text string) Value {
	return Value{Text: text, Present: true}
}

// None returns the missing-value marker.
func None() Value {
	return Value{}
}

// String returns the text, or "" when the value is missing.
func (v Value) String() string {
	return v.Text
}

// Segment is one parsed KEY=VALUE pair with a normalized key.
type Segment struct {
	Key   string
	Value Value
}

// Cell is a parsed attribute cell. Keys are unique and kept in the order
// they first appeared; a repeated key overwrites the earlier value.
type Cell struct {
	segments []Segment
	index    map[string]int
}

// Parse splits a raw attribute cell into segments. It never fails: blank
// segments and segments without a key are skipped.
func Parse(raw string) Cell {
	c := Cell{index: map[string]int{}}

	for _, seg := range strings.Split(raw, segmentSep) {
		c.parseSegment(seg)
	}

	return c
}

func (c *Cell) parseSegment(seg string) {
	if strings.TrimSpace(seg) == "" {
		return
	}

	// "CA=exit,CR=passed" written inside a single ';' segment.
	if strings.Count(seg, pairSep) > 1 && strings.Contains(seg, altSep) {
		for _, part := range strings.Split(seg, altSep) {
			c.parseSegment(part)
		}

		return
	}

	rawKey, rawValue, found := strings.Cut(seg, pairSep)

	key := match.NormalizeKey(rawKey)
	if key == "" {
		return
	}

	value := None()
	if found {
		value = Some(strings.TrimSpace(rawValue))
	}

	c.set(key, value)
}

func (c *Cell) set(key string, value Value) {
	if i, ok := c.index[key]; ok {
		c.segments[i].Value = value
		return
	}

	c.index[key] = len(c.segments)
	c.segments = append(c.segments, Segment{Key: key, Value: value})
}

// Lookup returns the value stored for key. The key is normalized first.
func (c Cell) Lookup(key string) (Value, bool) {
	i, ok := c.index[match.NormalizeKey(key)]
	if !ok {
		return Value{}, false
	}

	return c.segments[i].Value, true
}

// Segments returns a copy of the parsed segments in first-seen key order.
func (c Cell) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)

	return out
}
