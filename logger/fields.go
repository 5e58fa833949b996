package logger

// Standard field names for consistent structured logging across texref.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Files and scanning
	FieldPath      = "path"
	FieldDirectory = "directory"
	FieldExtension = "extension"
	FieldLabel     = "label"

	// Operations
	FieldOperation = "operation"
	FieldAction    = "action"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"
)
