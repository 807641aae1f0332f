package model

// CourseBehavior holds the course-wide defaults for per-unit behavior.
type CourseBehavior struct {
	MasteryScore    string `yaml:"mastery_score,omitempty"`
	MaxTimeAllowed  string `yaml:"max_time_allowed,omitempty"`
	TimeLimitAction string `yaml:"time_limit_action,omitempty"`
}

// Course is the single row of the course table.
type Course struct {
	Creator                string         `yaml:"creator,omitempty"`
	ID                     string         `yaml:"id"`
	Title                  string         `yaml:"title"`
	System                 string         `yaml:"system,omitempty"`
	Level                  string         `yaml:"level,omitempty"`
	Version                string         `yaml:"version,omitempty"`
	TotalAUs               int            `yaml:"total_aus,omitempty"`
	TotalBlocks            int            `yaml:"total_blocks,omitempty"`
	TotalObjectives        int            `yaml:"total_objectives,omitempty"`
	TotalComplexObjectives int            `yaml:"total_complex_objectives,omitempty"`
	Behavior               CourseBehavior `yaml:"behavior,omitempty"`
	Description            string         `yaml:"description,omitempty"`
}

// Descriptor carries human-readable metadata for one assignable unit.
type Descriptor struct {
	SystemID    string `yaml:"system_id"`
	DeveloperID string `yaml:"developer_id,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Tables is the full set of already-parsed input tables for one course.
// Slice order is significant: duplicate keys keep their first occurrence and
// the root fallback uses the first structure row.
type Tables struct {
	Course             Course
	Units              []AssignableUnit
	Descriptors        []Descriptor
	Structure          []CourseStructure
	Prerequisites      []Row
	ObjectiveRelations []Row
}
