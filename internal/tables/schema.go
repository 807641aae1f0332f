package tables

import "aicc-assembler/internal/model"

// CurrentVersion is the fixture schema version assumed when none is given.
const CurrentVersion = "1"

// File is the on-disk layout of a table fixture.
type File struct {
	Version            string                  `yaml:"version"`
	Course             model.Course            `yaml:"course"`
	AssignableUnits    []model.AssignableUnit  `yaml:"assignable_units"`
	Descriptors        []model.Descriptor      `yaml:"descriptors,omitempty"`
	CourseStructure    []model.CourseStructure `yaml:"course_structure"`
	Prerequisites      []map[string]string     `yaml:"prerequisites,omitempty"`
	ObjectiveRelations []map[string]string     `yaml:"objective_relations,omitempty"`
}

// Tables converts the fixture into assembler input. Generic rows become
// case-insensitive model.Row values.
func (f *File) Tables() model.Tables {
	return model.Tables{
		Course:             f.Course,
		Units:              f.AssignableUnits,
		Descriptors:        f.Descriptors,
		Structure:          f.CourseStructure,
		Prerequisites:      toRows(f.Prerequisites),
		ObjectiveRelations: toRows(f.ObjectiveRelations),
	}
}

func toRows(in []map[string]string) []model.Row {
	if len(in) == 0 {
		return nil
	}

	out := make([]model.Row, 0, len(in))
	for _, m := range in {
		out = append(out, model.NewRow(m))
	}

	return out
}
