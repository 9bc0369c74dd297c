package parser

import (
	"bytes"
	"fmt"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlTableParser implements TableParser for YAML.
type YamlTableParser struct{}

// NewYamlTableParser creates a new YamlTableParser.
func NewYamlTableParser() ports.TableParser {
	return &YamlTableParser{}
}

// Parse unmarshals YAML bytes into a Table. Unknown fields are rejected so a
// misspelled "description" does not silently become an empty one.
func (p *YamlTableParser) Parse(name string, data []byte) (*entities.Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var table entities.Table
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode YAML table %s: %w", name, err)
	}
	return &table, nil
}
