package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/phpshell/protoreg/infrastructure/source"
)

// lazyRegistry runs build at most once and caches its outcome, error included.
type lazyRegistry struct {
	build func() (*Registry, error)

	once   sync.Once
	reg    *Registry
	err    error
	builds atomic.Int32
}

func (l *lazyRegistry) get() (*Registry, error) {
	l.once.Do(func() {
		l.builds.Add(1)
		l.reg, l.err = l.build()
	})
	return l.reg, l.err
}

var shared = &lazyRegistry{build: buildShared}

func buildShared() (*Registry, error) {
	reg, err := New(context.Background(),
		WithSource(source.Embedded()),
		WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("build shared prototype registry: %w", err)
	}
	return reg, nil
}

// Init builds the shared registry from the embedded table if it has not been
// built yet. Services call it once during startup so a bad asset surfaces
// before any request is served. Concurrent callers block until the single
// construction finishes and all observe its outcome.
func Init() error {
	_, err := shared.get()
	return err
}

// Instance returns the shared registry, building it on first use. Every call
// returns the same *Registry. The embedded table is fixed at build time, so
// a construction failure means a corrupt binary and Instance panics rather
// than serve an empty or partial table.
func Instance() *Registry {
	reg, err := shared.get()
	if err != nil {
		panic(err)
	}
	return reg
}
