package attribute

//go:generate go tool stringer -type=Field -trimprefix=Field -output=field_string.go

// Field is the canonical meaning of an attribute key.
type Field int

const (
	FieldUnknown Field = iota // key is not in the alias table, kept verbatim

	FieldMasteryScore
	FieldMaxTimeAllowed
	FieldTimeLimitAction
	FieldCompletionAction
	FieldCompletionLessonStatus
	FieldCompletionResultStatus
	FieldMandatory
	FieldOptional

	// FieldTotal is the number of fields, FieldUnknown included.
	FieldTotal = int(iota)
)

// Key returns the canonical spelling used when a resolved attribute is
// stored back into a keyed mapping.
func (f Field) Key() string {
	switch f {
	case FieldMasteryScore:
		return "MASTERY_SCORE"
	case FieldMaxTimeAllowed:
		return "MAX_TIME_ALLOWED"
	case FieldTimeLimitAction:
		return "TIME_LIMIT_ACTION"
	case FieldCompletionAction:
		return "COMPLETION_ACTION"
	case FieldCompletionLessonStatus:
		return "COMPLETION_LESSON_STATUS"
	case FieldCompletionResultStatus:
		return "COMPLETION_RESULT_STATUS"
	case FieldMandatory:
		return "MANDATORY"
	case FieldOptional:
		return "OPTIONAL"
	default:
		return ""
	}
}

// IsCompletion reports whether f is one of the completion criteria fields.
func (f Field) IsCompletion() bool {
	switch f {
	case FieldCompletionAction, FieldCompletionLessonStatus, FieldCompletionResultStatus:
		return true
	default:
		return false
	}
}

// IsBehavior reports whether f overrides a per-unit behavior value that
// also has a course-wide default.
func (f Field) IsBehavior() bool {
	switch f {
	case FieldMasteryScore, FieldMaxTimeAllowed, FieldTimeLimitAction:
		return true
	default:
		return false
	}
}
