package validation

import "strings"

// FieldError describes a problem with one input field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned when input fails surface-syntax checks.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Error
	}
	return "invalid input: " + strings.Join(parts, "; ")
}
