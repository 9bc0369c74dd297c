// Package entities provides the core domain types of the prototype registry.
// A Prototype describes one built-in callable; a Table is the loadable unit
// that carries a batch of prototypes together with its format version.
package entities
