package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "question", "category", "difficulty"],
		"properties": {
			"id": {"type": "integer"},
			"question": {"type": "string", "minLength": 1},
			"category": {"type": "string"},
			"difficulty": {"enum": ["basic", "intermediate", "advanced"]}
		}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `[{"id": 1, "question": "What does SUM do?", "category": "basic_formulas", "difficulty": "basic"}]`
	assert.NoError(t, ValidateJSONString(testSchema, doc))
}

func TestValidateJSONString_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `[]`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	doc := `[{"id": 1, "question": "", "category": "basic_formulas", "difficulty": "expert"}]`

	err := ValidateJSONString(testSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `[{"id": 1, "question": "What does SUM do?"}]`

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateJSONString(testSchema, doc), &validationErr)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `[]`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(`[]`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	assert.ErrorContains(t, err, "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "absent-schema.json"), schemaPath)
	assert.ErrorContains(t, err, "schema file not found")
}

func TestResolveSchemaPath(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("does/not/exist.schema.json"))

	dir := t.TempDir()
	name := "present.schema.json"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(testSchema), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	resolved := ResolveSchemaPath(name)
	assert.NotEmpty(t, resolved)
	assert.True(t, filepath.IsAbs(resolved))
}
