package validation

import (
	"errors"
	"testing"

	"github.com/phpshell/protoreg/domain/entities"
	domainerrors "github.com/phpshell/protoreg/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTableValidator_ValidateJSON(t *testing.T) {
	v, err := NewTableValidator(WithLanguage(language.English))
	require.NoError(t, err)

	tests := []struct {
		name      string
		doc       string
		wantValid bool
		wantField string
	}{
		{
			name:      "valid table",
			doc:       `{"format":"1.0.0","prototypes":[{"key":"strlen","return":"int","params":"string str","description":"Get string length"}]}`,
			wantValid: true,
		},
		{
			name:      "empty metadata is allowed",
			doc:       `{"format":"1.0.0","runtime":"php-5.2","prototypes":[{"key":"pi","return":"","params":"","description":""}]}`,
			wantValid: true,
		},
		{
			name:      "missing description",
			doc:       `{"format":"1.0.0","prototypes":[{"key":"strlen","return":"int","params":"string str"}]}`,
			wantValid: false,
			wantField: "/prototypes/0",
		},
		{
			name:      "empty key",
			doc:       `{"format":"1.0.0","prototypes":[{"key":"","return":"","params":"","description":""}]}`,
			wantValid: false,
			wantField: "/prototypes/0/key",
		},
		{
			name:      "missing format",
			doc:       `{"prototypes":[]}`,
			wantValid: false,
		},
		{
			name:      "wrong type",
			doc:       `{"format":"1.0.0","prototypes":[{"key":"strlen","return":1,"params":"","description":""}]}`,
			wantValid: false,
			wantField: "/prototypes/0/return",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.ValidateJSON([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantValid {
				assert.Empty(t, result.Errors)
				return
			}
			require.NotEmpty(t, result.Errors)
			if tt.wantField != "" {
				fields := make([]string, 0, len(result.Errors))
				for _, e := range result.Errors {
					fields = append(fields, e.Field)
				}
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestTableValidator_ValidateJSON_Malformed(t *testing.T) {
	v, err := NewTableValidator()
	require.NoError(t, err)

	_, err = v.ValidateJSON([]byte(`{"format":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestValidateRecords(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		table := &entities.Table{
			Format: "1.0.0",
			Prototypes: []entities.Prototype{
				{Key: "PDO::query", Return: "object", Params: "string statement"},
				{Key: "pi"},
			},
		}
		result := ValidateRecords(table)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("whitespace in key", func(t *testing.T) {
		table := &entities.Table{
			Format:     "1.0.0",
			Prototypes: []entities.Prototype{{Key: "str len"}},
		}
		result := ValidateRecords(table)
		require.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "/prototypes/0/key", result.Errors[0].Field)
		assert.Equal(t, "symbolkey", result.Errors[0].Keyword)
	})

	t.Run("missing key and format", func(t *testing.T) {
		table := &entities.Table{
			Prototypes: []entities.Prototype{{Key: "ok"}, {Return: "int"}},
		}
		result := ValidateRecords(table)
		require.False(t, result.Valid)

		fields := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			fields = append(fields, e.Field)
		}
		assert.ElementsMatch(t, []string{"/format", "/prototypes/1/key"}, fields)
	})

	t.Run("nil table", func(t *testing.T) {
		result := ValidateRecords(nil)
		assert.False(t, result.Valid)
	})
}

func TestNamespaceToPointer(t *testing.T) {
	assert.Equal(t, "/prototypes/12/key", namespaceToPointer("Table.prototypes[12].key"))
	assert.Equal(t, "/format", namespaceToPointer("Table.format"))
	assert.Equal(t, "", namespaceToPointer("Table"))
}

func TestAsError(t *testing.T) {
	assert.NoError(t, AsError("a.json", &entities.ValidationResult{Valid: true}))
	assert.NoError(t, AsError("a.json", nil))

	err := AsError("a.json", &entities.ValidationResult{
		Errors: []entities.ValidationError{{Field: "/format", Message: "required"}},
	})
	var ve *domainerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "a.json", ve.Source)
	assert.Len(t, ve.Issues, 1)
}
