// Package registry implements the prototype registry: an immutable,
// process-wide table mapping symbol keys to prototype records.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/errors"
	"github.com/phpshell/protoreg/domain/ports"
)

// DuplicatePolicy decides what happens when two records share a key.
type DuplicatePolicy int

const (
	// Reject fails construction with a DuplicateKeyError.
	Reject DuplicatePolicy = iota
	// LastWins keeps the record loaded last, in source order.
	LastWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case LastWins:
		return "last-wins"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "reject" or "last-wins" to a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return Reject, nil
	case "last-wins", "lastwins":
		return LastWins, nil
	default:
		return Reject, fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// Registry is an immutable collection of prototypes.
// Once created via New, records cannot be added, changed or removed,
// so lookups need no locking.
type Registry struct {
	prototypes map[string]entities.Prototype
	names      []string // sorted for completion and consistent iteration
}

var _ ports.PrototypeCatalog = (*Registry)(nil)

// registryBuilder accumulates configuration during registry construction.
type registryBuilder struct {
	sources []ports.PrototypeSource
	policy  DuplicatePolicy
	logger  *slog.Logger
}

// Option configures registry construction.
type Option func(*registryBuilder)

// WithSource appends a source. Sources are loaded in the order given.
func WithSource(src ports.PrototypeSource) Option {
	return func(b *registryBuilder) {
		b.sources = append(b.sources, src)
	}
}

// WithPrototypes appends records held in memory as one more source.
func WithPrototypes(name string, prototypes ...entities.Prototype) Option {
	return WithSource(&staticSource{name: name, prototypes: prototypes})
}

// WithDuplicatePolicy sets the collision policy. Default is Reject.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(b *registryBuilder) {
		b.policy = policy
	}
}

// WithLogger sets the logger used during construction.
func WithLogger(logger *slog.Logger) Option {
	return func(b *registryBuilder) {
		b.logger = logger
	}
}

// New loads every source synchronously and returns the finished registry.
// Either the whole table is built or an error is returned; a partially
// populated registry is never handed out.
//
// Example usage:
//
//	reg, err := registry.New(ctx,
//	    registry.WithSource(source.Embedded()),
//	    registry.WithSource(source.NewFileSource("site.yaml")),
//	    registry.WithDuplicatePolicy(registry.LastWins),
//	)
func New(ctx context.Context, opts ...Option) (*Registry, error) {
	b := &registryBuilder{
		policy: Reject,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	prototypes := make(map[string]entities.Prototype)
	for _, src := range b.sources {
		table, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		if table == nil {
			table = &entities.Table{}
		}
		if err := b.merge(prototypes, src.Name(), table); err != nil {
			return nil, err
		}
		b.logger.DebugContext(ctx, "prototype source loaded",
			"source", src.Name(), "format", table.Format, "prototypes", table.Len())
	}

	names := make([]string, 0, len(prototypes))
	for name := range prototypes {
		names = append(names, name)
	}
	sort.Strings(names)

	b.logger.DebugContext(ctx, "prototype registry ready",
		"sources", len(b.sources), "prototypes", len(names), "policy", b.policy.String())

	return &Registry{
		prototypes: prototypes,
		names:      names,
	}, nil
}

// merge adds one table's records, applying the duplicate policy.
// Keys repeated inside a single table are subject to the same policy.
func (b *registryBuilder) merge(dst map[string]entities.Prototype, source string, table *entities.Table) error {
	for _, p := range table.Prototypes {
		if p.Key == "" {
			return &errors.ValidationError{
				Source: source,
				Issues: []entities.ValidationError{{Field: "key", Message: "prototype key cannot be empty"}},
			}
		}
		if _, exists := dst[p.Key]; exists {
			if b.policy == Reject {
				return &errors.DuplicateKeyError{Key: p.Key, Source: source}
			}
			b.logger.Debug("prototype replaced", "key", p.Key, "source", source)
		}
		dst[p.Key] = p
	}
	return nil
}

// Lookup returns the prototype stored under key. Matching is exact and
// case-sensitive: no trimming, normalization or fuzzy matching. A miss
// returns the zero Prototype and false.
func (r *Registry) Lookup(key string) (entities.Prototype, bool) {
	p, ok := r.prototypes[key]
	return p, ok
}

// Has returns true if a prototype with the given key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.prototypes[key]
	return ok
}

// Len returns the number of registered prototypes.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns a sorted list of all registered keys.
func (r *Registry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// Complete returns the sorted keys starting with prefix, e.g. "PDO::"
// for the methods of PDO. Matching is case-sensitive like Lookup.
func (r *Registry) Complete(prefix string) []string {
	i := sort.SearchStrings(r.names, prefix)
	var result []string
	for ; i < len(r.names) && strings.HasPrefix(r.names[i], prefix); i++ {
		result = append(result, r.names[i])
	}
	return result
}

// Prototypes returns every record in key order.
func (r *Registry) Prototypes() []entities.Prototype {
	result := make([]entities.Prototype, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.prototypes[name])
	}
	return result
}

// staticSource serves records given in code.
type staticSource struct {
	name       string
	prototypes []entities.Prototype
}

func (s *staticSource) Name() string {
	return s.name
}

func (s *staticSource) Load(_ context.Context) (*entities.Table, error) {
	prototypes := make([]entities.Prototype, len(s.prototypes))
	copy(prototypes, s.prototypes)
	return &entities.Table{Format: "1.0.0", Prototypes: prototypes}, nil
}
