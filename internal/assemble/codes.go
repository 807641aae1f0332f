package assemble

// Diagnostic codes raised during assembly.
const (
	CodeNoRootAU            = "AICC_NO_ROOT_AU"
	CodeAUNotFound          = "AICC_AU_NOT_FOUND"
	CodeNoRootBlock         = "AICC_NO_ROOT_BLOCK"
	CodeRootFallback        = "AICC_ROOT_FALLBACK"
	CodeMissingAUID         = "AICC_AU_MISSING_ID"
	CodeDuplicateAU         = "AICC_DUPLICATE_AU"
	CodeDuplicateDescriptor = "AICC_DUPLICATE_DESCRIPTOR"
	CodeDuplicateStructure  = "AICC_DUPLICATE_STRUCTURE"
	CodeUnknownAttribute    = "AICC_UNKNOWN_ATTRIBUTE"
)

// Source table names used as diagnostic context.
const (
	TableUnits       = "assignable_units"
	TableDescriptors = "descriptors"
	TableStructure   = "course_structure"
)
