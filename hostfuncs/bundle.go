package hostfuncs

import "sort"

// HostFuncBundle is a named group of host functions registered together,
// such as the prototype queries returned by PrototypeBundle.
type HostFuncBundle interface {
	// Handlers returns a map of handler names to ByteHandler functions.
	Handlers() map[string]ByteHandler
}

type staticBundle struct {
	handlers map[string]ByteHandler
}

// Handlers returns a copy so callers cannot alter the bundle.
func (b *staticBundle) Handlers() map[string]ByteHandler {
	out := make(map[string]ByteHandler, len(b.handlers))
	for name, h := range b.handlers {
		out[name] = h
	}
	return out
}

// WithBundle registers all handlers from a bundle. Names are added in sorted
// order, so a clash with an earlier registration always reports the same name.
func WithBundle(bundle HostFuncBundle) RegistryOption {
	return func(b *registryBuilder) {
		handlers := bundle.Handlers()
		names := make([]string, 0, len(handlers))
		for name := range handlers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if err := b.addHandler(name, handlers[name]); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}

// WithHandler registers a typed host function wrapped by NewJSONHandler.
//
//	WithHandler("prototype_owners", func(ctx context.Context, req OwnersRequest) OwnersResponse {
//	    return OwnersResponse{Owners: owners(catalog, req.Prefix)}
//	})
func WithHandler[Req any, Resp any](name string, fn HostFunc[Req, Resp]) RegistryOption {
	return func(b *registryBuilder) {
		if err := b.addHandler(name, NewJSONHandler(fn)); err != nil {
			b.errors = append(b.errors, err)
		}
	}
}
