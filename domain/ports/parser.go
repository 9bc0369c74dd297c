package ports

import "github.com/phpshell/protoreg/domain/entities"

// TableParser decodes raw bytes of one encoding into a Table.
type TableParser interface {
	// Parse decodes data. name is used for diagnostics only.
	Parse(name string, data []byte) (*entities.Table, error)
}
