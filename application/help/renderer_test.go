package help_test

import (
	"context"
	"testing"

	"github.com/phpshell/protoreg/application/help"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLookup(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(context.Background(), registry.WithPrototypes("test",
		entities.Prototype{Key: "PDO::query", Return: "object", Params: "string statement", Description: "Prepares and executes an SQL statement"},
		entities.Prototype{Key: "pi", Return: "float"},
		entities.Prototype{Key: "bare"},
	))
	require.NoError(t, err)
	return reg
}

func TestRenderer_Render(t *testing.T) {
	r, err := help.NewRenderer(newLookup(t))
	require.NoError(t, err)

	t.Run("With Description", func(t *testing.T) {
		out, ok, err := r.Render("PDO::query")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "object PDO::query(string statement)\n  Prepares and executes an SQL statement", out)
	})

	t.Run("Without Description", func(t *testing.T) {
		out, ok, err := r.Render("pi")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "float pi()", out)
	})

	t.Run("Empty Record", func(t *testing.T) {
		out, ok, err := r.Render("bare")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "bare()", out)
	})

	t.Run("Missing Key", func(t *testing.T) {
		out, ok, err := r.Render("pdo::query")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "no documentation available for pdo::query", out)
	})
}

func TestRenderer_CustomTemplate(t *testing.T) {
	r, err := help.NewRenderer(newLookup(t), help.WithTemplate(`{{.Owner}}|{{.Member}}|{{.IsMethod}}`))
	require.NoError(t, err)

	out, ok, err := r.Render("PDO::query")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "PDO|query|true", out)
}

func TestRenderer_StrictMissingField(t *testing.T) {
	r, err := help.NewRenderer(newLookup(t), help.WithTemplate(`{{.Deprecated}}`))
	require.NoError(t, err)

	_, ok, err := r.Render("pi")
	require.Error(t, err)
	assert.True(t, ok)
	assert.Contains(t, err.Error(), "map has no entry for key")

	lenient, err := help.NewRenderer(newLookup(t), help.WithTemplate(`{{.Deprecated}}`), help.WithStrict(false))
	require.NoError(t, err)
	out, _, err := lenient.Render("pi")
	require.NoError(t, err)
	assert.Equal(t, "<no value>", out)
}

func TestNewRenderer_InvalidTemplate(t *testing.T) {
	_, err := help.NewRenderer(newLookup(t), help.WithTemplate(`{{.Key`))
	require.Error(t, err)
}
