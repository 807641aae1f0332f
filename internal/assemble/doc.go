// Package assemble reconciles the AICC course tables into one Manifest.
//
// The pipeline runs in a fixed order:
//
//  1. Join: index units, descriptors and structure rows by their natural
//     keys (first occurrence wins), attach descriptors, and apply each
//     unit's structure-row attributes where the unit left a field blank.
//  2. Finalize: fill still-blank behavior fields from the course defaults,
//     then normalize mastery score, max time allowed and time-limit action.
//  3. Root: pick the ROOT structure row (or the first row), resolve its
//     unit, and derive the launch URL and description.
//
// Value problems never fail a load; they degrade to absent values.
// Structural problems are collected as coded diagnostics and returned
// together as a single *ParseError.
package assemble
