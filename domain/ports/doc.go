// Package ports defines the interfaces between the prototype registry and its
// collaborators. The shell depends only on PrototypeLookup; infrastructure
// adapters implement PrototypeSource and TableParser.
package ports
