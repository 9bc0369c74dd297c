package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/phpshell/protoreg/infrastructure/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_Scenarios(t *testing.T) {
	reg := Instance()

	t.Run("mysqli_connect", func(t *testing.T) {
		p, ok := reg.Lookup("mysqli_connect")
		require.True(t, ok)
		assert.Equal(t, "object", p.Return)
	})

	t.Run("PDO::query", func(t *testing.T) {
		p, ok := reg.Lookup("PDO::query")
		require.True(t, ok)
		assert.Equal(t, "object", p.Return)
		assert.Contains(t, p.Description, "Prepares and executes an SQL statement")
	})

	t.Run("unknown function", func(t *testing.T) {
		_, ok := reg.Lookup("does_not_exist_fn")
		assert.False(t, ok)
	})

	t.Run("wrong case", func(t *testing.T) {
		_, ok := reg.Lookup("pdo::query")
		assert.False(t, ok)
	})
}

func TestInstance_Identity(t *testing.T) {
	a := Instance()
	b := Instance()
	assert.Same(t, a, b)
	assert.Equal(t, a.Prototypes(), b.Prototypes())
	require.NoError(t, Init())
	assert.Same(t, a, Instance())
}

func TestInstance_BuiltOnce(t *testing.T) {
	Instance()
	_ = Init()
	assert.Equal(t, int32(1), shared.builds.Load())
}

func TestLazyRegistry_ConcurrentFirstUse(t *testing.T) {
	const workers = 32

	release := make(chan struct{})
	lazy := &lazyRegistry{build: func() (*Registry, error) {
		<-release
		return New(context.Background(), WithSource(source.Embedded()))
	}}

	var wg sync.WaitGroup
	results := make([]*Registry, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = lazy.get()
		}(i)
	}
	close(release)
	wg.Wait()

	for i, r := range results {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], r)
	}
	assert.Equal(t, int32(1), lazy.builds.Load())
	assert.Positive(t, results[0].Len())
}

func TestLazyRegistry_FailureIsSticky(t *testing.T) {
	lazy := &lazyRegistry{build: func() (*Registry, error) {
		return New(context.Background(), WithSource(source.NewBytesSource("broken.json", []byte("{"))))
	}}

	reg, err := lazy.get()
	require.Error(t, err)
	assert.Nil(t, reg)

	_, again := lazy.get()
	assert.Equal(t, err, again)
	assert.Equal(t, int32(1), lazy.builds.Load())
}
