// Package errors provides domain-specific error types for the prototype registry.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/phpshell/protoreg/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// LoadError represents a prototype source that could not be read or decoded.
type LoadError struct {
	Err    error
	Source string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load prototypes from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *LoadError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "load", Source: e.Source}
}

// DuplicateKeyError is returned when a key occurs twice and duplicates are rejected.
type DuplicateKeyError struct {
	Key    string
	Source string // source of the second occurrence
}

func (e *DuplicateKeyError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("duplicate prototype key %q in %s", e.Key, e.Source)
	}
	return fmt.Sprintf("duplicate prototype key %q", e.Key)
}

// ToErrorDetail implements DetailedError.
func (e *DuplicateKeyError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "duplicate", Code: e.Key, Source: e.Source}
}

// FormatError is returned when a table declares a layout version this build cannot read.
type FormatError struct {
	Err       error
	Source    string
	Format    string
	Supported string
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid table format %q: %v", e.Source, e.Format, e.Err)
	}
	return fmt.Sprintf("%s: table format %q does not satisfy %s", e.Source, e.Format, e.Supported)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *FormatError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "format", Code: e.Format, Source: e.Source}
}

// ValidationError reports every issue found while validating a table.
type ValidationError struct {
	Source string
	Issues []entities.ValidationError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Field != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return fmt.Sprintf("%s: invalid prototype table: %s", e.Source, strings.Join(parts, "; "))
}

// ToErrorDetail implements DetailedError.
func (e *ValidationError) ToErrorDetail() *entities.ErrorDetail {
	details := make(map[string]any, len(e.Issues))
	for _, issue := range e.Issues {
		details[issue.Field] = issue.Message
	}
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Source: e.Source, Details: details}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// SchemaError represents a schema generation or compilation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "schema", Code: e.Type}
}
