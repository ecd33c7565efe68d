package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldStylesheet = "stylesheet"
	FieldConfig     = "config"

	// Statistics fields.
	FieldEntries = "entries"
	FieldBytes   = "bytes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
