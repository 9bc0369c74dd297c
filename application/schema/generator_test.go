package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema_SimpleStruct(t *testing.T) {
	type SimpleConfig struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}

	schema, err := GenerateSchema(SimpleConfig{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	assert.Contains(t, string(schema), "host")
	assert.Contains(t, string(schema), "port")
}

func TestGenerateSchema_OmitEmptyIsOptional(t *testing.T) {
	type Config struct {
		Name  string `json:"name"`
		Extra string `json:"extra,omitempty"`
	}

	schema, err := GenerateSchema(Config{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	required, ok := decoded["required"].([]interface{})
	require.True(t, ok, "required should be an array")
	assert.Contains(t, required, "name")
	assert.NotContains(t, required, "extra")
}

func TestTableSchema(t *testing.T) {
	schema, err := TableSchema()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	assert.Equal(t, "Prototype table", decoded["title"])
	assert.NotContains(t, decoded, "$id")

	properties, ok := decoded["properties"].(map[string]interface{})
	require.True(t, ok, "properties should be a map")
	assert.Contains(t, properties, "format")
	assert.Contains(t, properties, "runtime")
	assert.Contains(t, properties, "prototypes")

	required, ok := decoded["required"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, required, "format")
	assert.Contains(t, required, "prototypes")
	assert.NotContains(t, required, "runtime")

	// Record fields are all mandatory.
	schemaStr := string(schema)
	for _, field := range []string{`"key"`, `"return"`, `"params"`, `"description"`} {
		assert.Contains(t, schemaStr, field)
	}
}
