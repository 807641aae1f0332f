package model

import (
	"strings"
	"time"

	"aicc-assembler/internal/diagnostic"
)

// ManifestParts is everything the assembler hands over to NewManifest.
type ManifestParts struct {
	Course             Course
	Units              []AssignableUnit
	Descriptors        []Descriptor
	Structure          []CourseStructure
	Prerequisites      []Row
	ObjectiveRelations []Row
	RootID             string
	LaunchURL          string
	Description        string
	Diagnostics        []diagnostic.Diagnostic
}

// Manifest is the assembled, immutable course model.
type Manifest struct {
	course             Course
	units              []AssignableUnit
	unitIndex          map[string]int
	descriptors        []Descriptor
	structure          []CourseStructure
	prerequisites      []Row
	objectiveRelations []Row
	rootID             string
	launchURL          string
	description        string
	diagnostics        []diagnostic.Diagnostic
}

// NewManifest freezes p into a Manifest. Every slice is deep-copied so the
// caller may reuse p afterwards.
func NewManifest(p ManifestParts) *Manifest {
	m := &Manifest{
		course:             p.Course,
		units:              cloneUnits(p.Units),
		unitIndex:          make(map[string]int, len(p.Units)),
		descriptors:        append([]Descriptor(nil), p.Descriptors...),
		structure:          cloneStructure(p.Structure),
		prerequisites:      cloneRows(p.Prerequisites),
		objectiveRelations: cloneRows(p.ObjectiveRelations),
		rootID:             p.RootID,
		launchURL:          p.LaunchURL,
		description:        p.Description,
		diagnostics:        append([]diagnostic.Diagnostic(nil), p.Diagnostics...),
	}

	for i := range m.units {
		key := m.units[i].Key()
		if _, dup := m.unitIndex[key]; !dup {
			m.unitIndex[key] = i
		}
	}

	return m
}

// Title returns the course title.
func (m *Manifest) Title() string { return m.course.Title }

// Identifier returns the course id.
func (m *Manifest) Identifier() string { return m.course.ID }

// Version returns the course version.
func (m *Manifest) Version() string { return m.course.Version }

// Description returns the resolved description: the launch unit's descriptor
// description when present, else the course description.
func (m *Manifest) Description() string { return m.description }

// LaunchURL returns the root unit's file name, as authored.
func (m *Manifest) LaunchURL() string { return m.launchURL }

// Duration is always zero; the format carries no authored course duration.
func (m *Manifest) Duration() time.Duration { return 0 }

// Course returns a copy of the course row.
func (m *Manifest) Course() Course { return m.course }

// RootID returns the system id of the root unit.
func (m *Manifest) RootID() string { return m.rootID }

// RootUnit returns a copy of the root unit.
func (m *Manifest) RootUnit() AssignableUnit {
	u, _ := m.UnitByID(m.rootID)
	return u
}

// UnitByID returns a copy of the unit with the given system id.
func (m *Manifest) UnitByID(id string) (AssignableUnit, bool) {
	i, ok := m.unitIndex[strings.TrimSpace(id)]
	if !ok {
		return AssignableUnit{}, false
	}

	return m.units[i].Clone(), true
}

// AssignableUnits returns copies of the enriched units, duplicates removed.
func (m *Manifest) AssignableUnits() []AssignableUnit { return cloneUnits(m.units) }

// Descriptors returns the descriptor table as given.
func (m *Manifest) Descriptors() []Descriptor {
	return append([]Descriptor(nil), m.descriptors...)
}

// CourseStructure returns the structure table with parsed attributes.
func (m *Manifest) CourseStructure() []CourseStructure { return cloneStructure(m.structure) }

// Prerequisites returns the prerequisites table rows, unprocessed.
func (m *Manifest) Prerequisites() []Row { return cloneRows(m.prerequisites) }

// ObjectiveRelations returns the objective relations table rows, unprocessed.
func (m *Manifest) ObjectiveRelations() []Row { return cloneRows(m.objectiveRelations) }

// Diagnostics returns the warnings and infos raised while assembling.
func (m *Manifest) Diagnostics() []diagnostic.Diagnostic {
	return append([]diagnostic.Diagnostic(nil), m.diagnostics...)
}

type manifestView struct {
	ID                 string            `yaml:"id"`
	Title              string            `yaml:"title"`
	Version            string            `yaml:"version,omitempty"`
	Description        string            `yaml:"description,omitempty"`
	LaunchURL          string            `yaml:"launch_url"`
	Root               string            `yaml:"root"`
	Course             Course            `yaml:"course"`
	Units              []unitView        `yaml:"assignable_units"`
	Descriptors        []Descriptor      `yaml:"descriptors,omitempty"`
	Structure          []CourseStructure `yaml:"course_structure"`
	Prerequisites      []Row             `yaml:"prerequisites,omitempty"`
	ObjectiveRelations []Row             `yaml:"objective_relations,omitempty"`
}

type unitView struct {
	AssignableUnit `yaml:",inline"`
	Title          string `yaml:"title,omitempty"`
}

// MarshalYAML renders the manifest for inspection.
func (m *Manifest) MarshalYAML() (any, error) {
	units := make([]unitView, 0, len(m.units))
	for i := range m.units {
		units = append(units, unitView{AssignableUnit: m.units[i], Title: m.units[i].Title()})
	}

	return manifestView{
		ID:                 m.course.ID,
		Title:              m.course.Title,
		Version:            m.course.Version,
		Description:        m.description,
		LaunchURL:          m.launchURL,
		Root:               m.rootID,
		Course:             m.course,
		Units:              units,
		Descriptors:        m.descriptors,
		Structure:          m.structure,
		Prerequisites:      m.prerequisites,
		ObjectiveRelations: m.objectiveRelations,
	}, nil
}

func cloneUnits(in []AssignableUnit) []AssignableUnit {
	if in == nil {
		return nil
	}

	out := make([]AssignableUnit, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

func cloneStructure(in []CourseStructure) []CourseStructure {
	if in == nil {
		return nil
	}

	out := make([]CourseStructure, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

func cloneRows(in []Row) []Row {
	if in == nil {
		return nil
	}

	out := make([]Row, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}
