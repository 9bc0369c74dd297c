package entities

// ValidationResult represents the outcome of validating a prototype table.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a specific validation error.
// Field is a JSON pointer into the table (e.g. "/prototypes/3/key").
type ValidationError struct {
	Field   string
	Message string
	Keyword string
}
