// Package attribute parses the free-form "attributes" cell of a course
// structure row and resolves its keys against the fixed alias table.
//
// A cell is a ';'-separated list of KEY=VALUE segments. Authoring tools
// disagree on delimiters, so a segment holding several '=' and a ',' is
// split again on ','. Keys are trimmed and upper-cased; values are trimmed.
// A segment without '=' records the key with no value at all, which is
// distinct from a key with an empty value.
//
// Resolution turns the parsed cell into a tagged union of Attribute values:
// each one is either a known Field (mastery score, max time allowed, ...)
// or FieldUnknown carrying the verbatim key.
package attribute
