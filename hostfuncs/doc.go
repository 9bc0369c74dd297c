// Package hostfuncs exposes the prototype registry as JSON host functions.
//
// Handlers are plain Go and carry no WASM runtime dependency; the wazero
// adapter in infrastructure/wazero binds them to a guest module. A lookup
// miss is a normal response with found set to false, never an error.
package hostfuncs
