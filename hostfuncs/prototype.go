package hostfuncs

import (
	"context"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/ports"
)

// Host function names exported by PrototypeBundle.
const (
	PrototypeLookupFunc   = "prototype_lookup"
	PrototypeCompleteFunc = "prototype_complete"
)

// DefaultCompleteLimit caps completion results when the request sets no limit.
const DefaultCompleteLimit = 100

// PrototypeLookupRequest asks for the record stored under Key.
type PrototypeLookupRequest struct {
	// Key is matched exactly and case-sensitively.
	Key string `json:"key"`
}

// PrototypeLookupResponse carries the record, if any.
type PrototypeLookupResponse struct {
	Prototype *entities.Prototype `json:"prototype,omitempty"`
	Signature string              `json:"signature,omitempty"`
	Found     bool                `json:"found"`
}

// PrototypeCompleteRequest asks for keys beginning with Prefix.
type PrototypeCompleteRequest struct {
	Prefix string `json:"prefix"`

	// Limit caps the number of keys returned. Zero or less means DefaultCompleteLimit.
	Limit int `json:"limit,omitempty"`
}

// PrototypeCompleteResponse lists matching keys in sorted order.
type PrototypeCompleteResponse struct {
	Keys      []string `json:"keys"`
	Truncated bool     `json:"truncated,omitempty"`
}

// PerformPrototypeLookup answers a lookup request. A miss is reported with
// Found set to false.
func PerformPrototypeLookup(lookup ports.PrototypeLookup, req PrototypeLookupRequest) PrototypeLookupResponse {
	p, ok := lookup.Lookup(req.Key)
	if !ok {
		return PrototypeLookupResponse{}
	}
	return PrototypeLookupResponse{
		Found:     true,
		Prototype: &p,
		Signature: p.Signature(),
	}
}

// PerformPrototypeComplete answers a completion request.
func PerformPrototypeComplete(catalog ports.PrototypeCatalog, req PrototypeCompleteRequest) PrototypeCompleteResponse {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultCompleteLimit
	}

	keys := catalog.Complete(req.Prefix)
	resp := PrototypeCompleteResponse{Keys: keys}
	if len(keys) > limit {
		resp.Keys = keys[:limit]
		resp.Truncated = true
	}
	if resp.Keys == nil {
		resp.Keys = []string{}
	}
	return resp
}

// PrototypeBundle returns a bundle with the registry query host functions:
// prototype_lookup, prototype_complete.
func PrototypeBundle(catalog ports.PrototypeCatalog) HostFuncBundle {
	return &staticBundle{
		handlers: map[string]ByteHandler{
			PrototypeLookupFunc: NewJSONHandler(func(_ context.Context, req PrototypeLookupRequest) PrototypeLookupResponse {
				return PerformPrototypeLookup(catalog, req)
			}),
			PrototypeCompleteFunc: NewJSONHandler(func(_ context.Context, req PrototypeCompleteRequest) PrototypeCompleteResponse {
				return PerformPrototypeComplete(catalog, req)
			}),
		},
	}
}
