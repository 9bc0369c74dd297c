package ports

import "github.com/phpshell/protoreg/domain/entities"

// PrototypeLookup is the query interface the shell's help and completion
// code depends on. A miss is reported through the boolean, never as an error.
type PrototypeLookup interface {
	// Lookup returns the prototype stored under key using exact,
	// case-sensitive matching.
	Lookup(key string) (entities.Prototype, bool)
}

// PrototypeCatalog extends PrototypeLookup with enumeration for completion.
type PrototypeCatalog interface {
	PrototypeLookup

	// Names returns all keys in sorted order.
	Names() []string

	// Complete returns the sorted keys that start with prefix.
	Complete(prefix string) []string
}
