// Package protoreg is the entry point the interactive shell uses to answer
// help and completion queries about built-in functions and methods.
//
// Keys are either bare function names ("mysqli_connect") or owner-qualified
// method names ("PDO::query"). Matching is exact and case-sensitive.
//
//	if p, ok := protoreg.Lookup("PDO::query"); ok {
//	    fmt.Println(p.Signature())
//	}
package protoreg

import (
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/registry"
)

// Prototype is the record stored for one symbol.
type Prototype = entities.Prototype

// Init builds the shared registry now instead of on first lookup.
// Call it during startup to surface a corrupt data asset as an error.
func Init() error {
	return registry.Init()
}

// Instance returns the shared registry. It panics if the embedded data
// asset cannot be loaded.
func Instance() *registry.Registry {
	return registry.Instance()
}

// Lookup returns the prototype registered under key.
func Lookup(key string) (Prototype, bool) {
	return registry.Instance().Lookup(key)
}

// Complete returns the sorted keys beginning with prefix.
func Complete(prefix string) []string {
	return registry.Instance().Complete(prefix)
}
