// Package tables loads AICC course tables from a YAML fixture file.
//
// The fixture mirrors the AICC file set, one key per table:
//
//	version: "1"
//	course:
//	  id: SAFETY-101
//	  title: Safety Basics
//	  behavior:
//	    mastery_score: "80"
//	    max_time_allowed: "02:00:00"
//	assignable_units:
//	  - system_id: AU1
//	    file_name: content/au1.html
//	descriptors:
//	  - system_id: AU1
//	    title: Introduction
//	course_structure:
//	  - block: ROOT
//	    member: AU1
//	    attributes: "CA=exit;CR=passed"
//	prerequisites:
//	  - structure_element: AU1
//	    prerequisite: ""
//	objective_relations: []
//
// Unknown top-level or per-row keys are rejected so that typos surface as
// load errors instead of silently missing data.
package tables
