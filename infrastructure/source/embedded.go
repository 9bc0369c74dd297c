package source

import (
	"context"
	_ "embed"

	"github.com/phpshell/protoreg/application/validation"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/errors"
	"github.com/phpshell/protoreg/domain/ports"
	"github.com/phpshell/protoreg/infrastructure/parser"
)

// EmbeddedName identifies the compiled-in table in errors and logs.
const EmbeddedName = "embedded:prototypes.json"

//go:embed data/prototypes.json
var embeddedTable []byte

// EmbeddedSource serves the prototype table compiled into the binary.
type EmbeddedSource struct {
	data []byte
	name string
}

// Embedded returns the source for the compiled-in table.
func Embedded() ports.PrototypeSource {
	return &EmbeddedSource{data: embeddedTable, name: EmbeddedName}
}

// NewBytesSource serves a JSON table held in memory. The bytes go through
// the same checks as the embedded asset.
func NewBytesSource(name string, data []byte) ports.PrototypeSource {
	return &EmbeddedSource{data: data, name: name}
}

// Name implements PrototypeSource.
func (s *EmbeddedSource) Name() string {
	return s.name
}

// Load validates the JSON document against the table schema, decodes it and
// checks format version and records.
func (s *EmbeddedSource) Load(_ context.Context) (*entities.Table, error) {
	return loadJSON(s.name, s.data)
}

// EmbeddedBytes returns a copy of the raw compiled-in asset.
func EmbeddedBytes() []byte {
	out := make([]byte, len(embeddedTable))
	copy(out, embeddedTable)
	return out
}

func loadJSON(name string, data []byte) (*entities.Table, error) {
	v, err := validation.NewTableValidator()
	if err != nil {
		return nil, &errors.LoadError{Source: name, Err: err}
	}

	result, err := v.ValidateJSON(data)
	if err != nil {
		return nil, &errors.LoadError{Source: name, Err: err}
	}
	if err := validation.AsError(name, result); err != nil {
		return nil, err
	}

	table, err := parser.NewJSONTableParser().Parse(name, data)
	if err != nil {
		return nil, &errors.LoadError{Source: name, Err: err}
	}
	if err := checkTable(name, table); err != nil {
		return nil, err
	}
	return table, nil
}
