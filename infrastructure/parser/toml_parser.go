package parser

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/ports"
)

// TomlTableParser implements TableParser for TOML.
//
//	format = "1.0.0"
//
//	[[prototypes]]
//	key = "PDO::query"
//	return = "object"
type TomlTableParser struct{}

// NewTomlTableParser creates a new TomlTableParser.
func NewTomlTableParser() ports.TableParser {
	return &TomlTableParser{}
}

// Parse decodes TOML bytes into a Table, rejecting keys the table does not define.
func (p *TomlTableParser) Parse(name string, data []byte) (*entities.Table, error) {
	var table entities.Table
	md, err := toml.Decode(string(data), &table)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML table %s: %w", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("failed to decode TOML table %s: unknown keys %s", name, strings.Join(keys, ", "))
	}
	return &table, nil
}
