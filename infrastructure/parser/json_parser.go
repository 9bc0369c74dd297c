package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/ports"
)

// JSONTableParser implements TableParser for JSON.
type JSONTableParser struct{}

// NewJSONTableParser creates a new JSONTableParser.
func NewJSONTableParser() ports.TableParser {
	return &JSONTableParser{}
}

// Parse unmarshals JSON bytes into a Table.
func (p *JSONTableParser) Parse(name string, data []byte) (*entities.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var table entities.Table
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode JSON table %s: %w", name, err)
	}
	return &table, nil
}
