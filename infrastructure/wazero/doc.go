// Package wazero binds the prototype host functions to the wazero runtime.
//
// Guests call each function with a packed i64 (upper 32 bits pointer, lower
// 32 bits length) addressing a JSON request in their own memory. The response
// is written into memory obtained from the guest's "allocate" export and
// returned packed the same way.
//
// # Basic Usage
//
//	handlers, err := hostfuncs.NewRegistry(
//	    hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
//	    hostfuncs.WithBundle(hostfuncs.PrototypeBundle(registry.Instance())),
//	)
//	if err != nil {
//	    return err
//	}
//
//	runtime := wazero.NewRuntime(ctx)
//	err = wazero.RegisterWithRuntime(ctx, runtime, handlers)
//
// A guest then imports prototype_lookup and prototype_complete from the
// "protoreg_host" module.
package wazero
