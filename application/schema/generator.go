// Package schema provides JSON schema generation for prototype tables.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/errors"
)

// TableSchemaID is the resource name the table schema is compiled under.
const TableSchemaID = "prototype-table.schema.json"

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	return marshalSchema(reflector.Reflect(v))
}

// TableSchema returns the JSON schema every prototype table document must satisfy.
// Fields without omitempty are required, so each record must carry key,
// return, params and description, even when the last three are empty.
func TableSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		Anonymous:      true, // No $id; the compiler assigns TableSchemaID
	}
	s := reflector.Reflect(&entities.Table{})
	s.Title = "Prototype table"
	s.Description = "Signature metadata for built-in functions and Owner::member methods."

	data, err := marshalSchema(s)
	if err != nil {
		return nil, &errors.SchemaError{Type: "Table", Err: err}
	}
	return data, nil
}

func marshalSchema(s *jsonschema.Schema) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return jsonBytes, nil
}
