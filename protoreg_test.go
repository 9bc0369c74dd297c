package protoreg_test

import (
	"testing"

	"github.com/phpshell/protoreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	require.NoError(t, protoreg.Init())

	tests := []struct {
		key   string
		found bool
		ret   string
	}{
		{key: "mysqli_connect", found: true, ret: "object"},
		{key: "PDO::query", found: true, ret: "object"},
		{key: "does_not_exist_fn", found: false},
		{key: "pdo::query", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, ok := protoreg.Lookup(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.ret, p.Return)
		})
	}
}

func TestLookup_PDOQueryDescription(t *testing.T) {
	p, ok := protoreg.Lookup("PDO::query")
	require.True(t, ok)
	assert.Contains(t, p.Description, "Prepares and executes an SQL statement")
}

func TestInstance_Same(t *testing.T) {
	assert.Same(t, protoreg.Instance(), protoreg.Instance())
}

func TestComplete(t *testing.T) {
	keys := protoreg.Complete("PDO::")
	assert.Contains(t, keys, "PDO::query")
	for _, k := range keys {
		assert.Contains(t, k, "PDO::")
	}
	assert.Empty(t, protoreg.Complete("pdo::"))
}
