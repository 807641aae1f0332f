package model

import "strings"

// RootBlock is the block label that marks the course entry point.
const RootBlock = "ROOT"

// CourseStructure is one edge of the unit hierarchy. Attributes is the raw
// free-text cell; Normalized and AdditionalColumns are its parsed form,
// filled in by the assembler.
type CourseStructure struct {
	Block         string `yaml:"block"`
	Member        string `yaml:"member"`
	Prerequisites string `yaml:"prerequisites,omitempty"`
	Attributes    string `yaml:"attributes,omitempty"`

	// Normalized maps canonical keys (MASTERY_SCORE, ...) to values.
	Normalized Rules `yaml:"normalized,omitempty"`
	// AdditionalColumns holds every attribute key the alias table does not know.
	AdditionalColumns Rules `yaml:"additional_columns,omitempty"`
}

// IsRoot reports whether the block label is ROOT, ignoring case.
func (s *CourseStructure) IsRoot() bool {
	return strings.EqualFold(strings.TrimSpace(s.Block), RootBlock)
}

// MemberKey returns the trimmed member id used for joins.
func (s *CourseStructure) MemberKey() string {
	return strings.TrimSpace(s.Member)
}

// Clone returns a deep copy of the row.
func (s CourseStructure) Clone() CourseStructure {
	s.Normalized = s.Normalized.Clone()
	s.AdditionalColumns = s.AdditionalColumns.Clone()

	return s
}
