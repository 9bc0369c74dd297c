package ports

import (
	"context"

	"github.com/phpshell/protoreg/domain/entities"
)

// PrototypeSource supplies one table of prototypes at registry construction.
type PrototypeSource interface {
	// Name identifies the source in errors and logs.
	Name() string

	// Load reads and decodes the table. It is called once per registry build.
	Load(ctx context.Context) (*entities.Table, error)
}
