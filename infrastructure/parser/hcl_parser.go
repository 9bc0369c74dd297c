package parser

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/ports"
)

// hclTableFile is the top-level structure of an HCL table for decoding.
type hclTableFile struct {
	Format     string          `hcl:"format"`
	Runtime    string          `hcl:"runtime,optional"`
	Prototypes []*hclPrototype `hcl:"prototype,block"`
}

// hclPrototype is one labelled prototype block:
//
//	prototype "PDO::query" {
//	  return      = "object"
//	  params      = "string statement"
//	  description = "..."
//	}
type hclPrototype struct {
	Key         string `hcl:"key,label"`
	Return      string `hcl:"return,optional"`
	Params      string `hcl:"params,optional"`
	Description string `hcl:"description,optional"`
}

// HclTableParser implements TableParser for HCL.
type HclTableParser struct{}

// NewHclTableParser creates a new HclTableParser.
func NewHclTableParser() ports.TableParser {
	return &HclTableParser{}
}

// Parse decodes HCL bytes into a Table. Omitted return, params and
// description attributes decode to empty strings.
func (p *HclTableParser) Parse(name string, data []byte) (*entities.Table, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL table %s: %w", name, diags)
	}

	var parsed hclTableFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL table %s: %w", name, diags)
	}

	table := &entities.Table{
		Format:     parsed.Format,
		Runtime:    parsed.Runtime,
		Prototypes: make([]entities.Prototype, 0, len(parsed.Prototypes)),
	}
	for _, block := range parsed.Prototypes {
		table.Prototypes = append(table.Prototypes, entities.Prototype{
			Key:         block.Key,
			Return:      block.Return,
			Params:      block.Params,
			Description: block.Description,
		})
	}
	return table, nil
}
