// Package model defines the AICC course tables and the assembled Manifest.
//
// Table rows (Course, AssignableUnit, Descriptor, CourseStructure, Row) are
// plain values produced by a table reader. The assembler enriches copies of
// them and freezes the result in a Manifest, whose accessors only ever hand
// out copies.
package model
