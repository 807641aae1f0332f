package model

import (
	"strings"
	"time"
)

// AssignableUnit is one launchable learning unit. The raw behavior fields
// come from the AU table (or the structure table when blank there); the
// normalized fields are filled in by the assembler.
type AssignableUnit struct {
	SystemID        string `yaml:"system_id"`
	Type            string `yaml:"type,omitempty"`
	CommandLine     string `yaml:"command_line,omitempty"`
	FileName        string `yaml:"file_name,omitempty"`
	CoreVendor      string `yaml:"core_vendor,omitempty"`
	WebLaunch       string `yaml:"web_launch,omitempty"`
	AUPassword      string `yaml:"au_password,omitempty"`
	MasteryScore    string `yaml:"mastery_score,omitempty"`
	MaxTimeAllowed  string `yaml:"max_time_allowed,omitempty"`
	TimeLimitAction string `yaml:"time_limit_action,omitempty"`
	Prerequisites   string `yaml:"prerequisites,omitempty"`

	NormalizedMasteryScore   *float64            `yaml:"normalized_mastery_score,omitempty"`
	NormalizedMaxTimeAllowed *time.Duration      `yaml:"normalized_max_time_allowed,omitempty"`
	TimeLimitActions         []string            `yaml:"time_limit_actions,omitempty"`
	Mandatory                *bool               `yaml:"mandatory,omitempty"`
	Completion               *CompletionCriteria `yaml:"completion,omitempty"`
	Descriptor               *Descriptor         `yaml:"-"`
}

// Key returns the trimmed system id used for joins.
func (u *AssignableUnit) Key() string {
	return strings.TrimSpace(u.SystemID)
}

// MasteryScoreValue returns the normalized mastery score.
func (u *AssignableUnit) MasteryScoreValue() (float64, bool) {
	if u.NormalizedMasteryScore == nil {
		return 0, false
	}

	return *u.NormalizedMasteryScore, true
}

// MaxTimeAllowedValue returns the normalized max time allowed.
func (u *AssignableUnit) MaxTimeAllowedValue() (time.Duration, bool) {
	if u.NormalizedMaxTimeAllowed == nil {
		return 0, false
	}

	return *u.NormalizedMaxTimeAllowed, true
}

// IsMandatory returns the explicit override, or true when there is none.
func (u *AssignableUnit) IsMandatory() bool {
	if u.Mandatory == nil {
		return true
	}

	return *u.Mandatory
}

// Title returns the descriptor title, if a descriptor was matched.
func (u *AssignableUnit) Title() string {
	if u.Descriptor == nil {
		return ""
	}

	return u.Descriptor.Title
}

// Source returns a copy of the unit holding only the authored columns.
// Every field the assembler derives is cleared.
func (u AssignableUnit) Source() AssignableUnit {
	u.NormalizedMasteryScore = nil
	u.NormalizedMaxTimeAllowed = nil
	u.TimeLimitActions = nil
	u.Mandatory = nil
	u.Completion = nil
	u.Descriptor = nil

	return u
}

// Clone returns a deep copy of the unit.
func (u AssignableUnit) Clone() AssignableUnit {
	if u.NormalizedMasteryScore != nil {
		v := *u.NormalizedMasteryScore
		u.NormalizedMasteryScore = &v
	}

	if u.NormalizedMaxTimeAllowed != nil {
		v := *u.NormalizedMaxTimeAllowed
		u.NormalizedMaxTimeAllowed = &v
	}

	if u.TimeLimitActions != nil {
		u.TimeLimitActions = append([]string{}, u.TimeLimitActions...)
	}

	if u.Mandatory != nil {
		v := *u.Mandatory
		u.Mandatory = &v
	}

	if u.Completion != nil {
		c := u.Completion.Clone()
		u.Completion = &c
	}

	if u.Descriptor != nil {
		d := *u.Descriptor
		u.Descriptor = &d
	}

	return u
}

// CompletionCriteria is attached to a unit when its structure row carried
// any of the completion attributes (CA, CL, CR). AdditionalRules holds every
// other unrecognized attribute found in the same cell.
type CompletionCriteria struct {
	Action          string `yaml:"action,omitempty"`
	LessonStatus    string `yaml:"lesson_status,omitempty"`
	ResultStatus    string `yaml:"result_status,omitempty"`
	AdditionalRules Rules  `yaml:"additional_rules,omitempty"`
}

// Clone returns a deep copy of the criteria.
func (c CompletionCriteria) Clone() CompletionCriteria {
	c.AdditionalRules = c.AdditionalRules.Clone()
	return c
}
