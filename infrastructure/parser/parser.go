// Package parser decodes prototype tables from the structured-data formats
// accepted for side-loaded tables.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/phpshell/protoreg/domain/ports"
)

// ForPath selects a TableParser from the file extension of path.
func ForPath(path string) (ports.TableParser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return NewJSONTableParser(), nil
	case ".yaml", ".yml":
		return NewYamlTableParser(), nil
	case ".toml":
		return NewTomlTableParser(), nil
	case ".hcl":
		return NewHclTableParser(), nil
	default:
		return nil, fmt.Errorf("unsupported table format %q for %s", ext, path)
	}
}
