package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"value": {"type": "integer", "minimum": 0}
	},
	"required": ["name"],
	"additionalProperties": false
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o644))
	return path
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `{"name": "Potion", "value": 30}`, ""},
		{"optional field omitted", `{"name": "Potion"}`, ""},
		{"missing required", `{"value": 3}`, "required"},
		{"wrong type", `{"name": "Potion", "value": "many"}`, "/value"},
		{"below minimum", `{"name": "Potion", "value": -1}`, "minimum"},
		{"unknown field", `{"name": "Potion", "mana": 1}`, "additionalProperties"},
		{"malformed", `{"name": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.data), schemaPath)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeSchema(t)

	assert.NoError(t, v.ValidateYAML([]byte("name: Sword\nvalue: 5\n"), schemaPath))

	err := v.ValidateYAML([]byte("name: Sword\nvalue: -5\n"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	err = v.ValidateYAML([]byte("name: [unterminated\n"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateJSON([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
