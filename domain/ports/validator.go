package ports

import "github.com/phpshell/protoreg/domain/entities"

// TableValidator validates prototype tables before they reach a registry.
type TableValidator interface {
	// ValidateJSON checks a raw JSON table document against the table schema.
	ValidateJSON(raw []byte) (*entities.ValidationResult, error)

	// ValidateTable checks decoded records field by field.
	ValidateTable(table *entities.Table) *entities.ValidationResult
}
