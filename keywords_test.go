package jsonschemax_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocavue/jsonschemax"
)

func compileNoCheck(t *testing.T, schema any) *jsonschemax.Schema {
	t.Helper()
	s, err := jsonschemax.Compile(schema, jsonschemax.WithCheckSchema(false))
	require.NoError(t, err)
	return s
}

func TestMultipleOfExactness(t *testing.T) {
	// Decoded the way a real schema document would be: json.Number carries
	// the exact decimal text, so 2.9 / 0.1 lands on exactly 29, something a
	// float64 division would not guarantee.
	schema := compileNoCheck(t, map[string]any{"multipleOf": json.Number("0.1")})
	assert.True(t, schema.Validate(json.Number("2.9")))
	assert.False(t, schema.Validate(json.Number("2.95")))
}

func TestExclusiveMinimumMaximum(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{"exclusiveMinimum": 0, "exclusiveMaximum": 10})
	assert.True(t, schema.Validate(5))
	assert.False(t, schema.Validate(0))
	assert.False(t, schema.Validate(10))
}

func TestPattern(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{"pattern": "^a+$"})
	assert.True(t, schema.Validate("aaa"))
	assert.False(t, schema.Validate("aab"))
	assert.True(t, schema.Validate(1)) // non-string ignored
}

func TestItemsTupleAndAdditionalItems(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{
		"items":           []any{map[string]any{"type": "integer"}, map[string]any{"type": "string"}},
		"additionalItems": false,
	})
	assert.True(t, schema.Validate([]any{1, "a"}))
	assert.True(t, schema.Validate([]any{1, "a"})) // exact length ok
	assert.False(t, schema.Validate([]any{1, "a", "extra"}))
	assert.False(t, schema.Validate([]any{"wrong", "a"}))
}

func TestContains(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{"contains": map[string]any{"type": "integer"}})
	assert.True(t, schema.Validate([]any{"a", 2, "c"}))
	assert.False(t, schema.Validate([]any{"a", "b"}))
}

func TestDependenciesArrayAndSchemaForms(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{
		"dependencies": map[string]any{
			"credit_card": []any{"billing_address"},
			"name":        map[string]any{"required": []any{"surname"}},
		},
	})
	assert.True(t, schema.Validate(map[string]any{}))
	assert.True(t, schema.Validate(map[string]any{"credit_card": 1, "billing_address": "x"}))
	assert.False(t, schema.Validate(map[string]any{"credit_card": 1}))
	assert.True(t, schema.Validate(map[string]any{"name": "a", "surname": "b"}))
	assert.False(t, schema.Validate(map[string]any{"name": "a"}))
}

func TestAdditionalPropertiesExcludesPropertiesAndPatternProperties(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{
		"properties":        map[string]any{"foo": true},
		"patternProperties": map[string]any{"^bar": true},
		"additionalProperties": false,
	})
	assert.True(t, schema.Validate(map[string]any{"foo": 1, "bart": 2}))
	assert.False(t, schema.Validate(map[string]any{"baz": 3}))
}

func TestAdditionalPropertiesWithoutProperties(t *testing.T) {
	// additionalProperties's exclusion set is just "whatever
	// patternProperties matches" when properties is absent.
	schema := compileNoCheck(t, map[string]any{
		"patternProperties":    map[string]any{"^x": true},
		"additionalProperties": false,
	})
	assert.True(t, schema.Validate(map[string]any{"x1": 1}))
	assert.False(t, schema.Validate(map[string]any{"y1": 1}))
}

func TestIfThenElse(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{
		"if":   map[string]any{"properties": map[string]any{"kind": map[string]any{"const": "a"}}},
		"then": map[string]any{"required": []any{"aOnly"}},
		"else": map[string]any{"required": []any{"bOnly"}},
	})
	assert.True(t, schema.Validate(map[string]any{"kind": "a", "aOnly": 1}))
	assert.False(t, schema.Validate(map[string]any{"kind": "a"}))
	assert.True(t, schema.Validate(map[string]any{"kind": "b", "bOnly": 1}))
}

func TestOneOfExactlyOne(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"multipleOf": 1.5},
		},
	})
	assert.True(t, schema.Validate(5))    // integer only
	assert.True(t, schema.Validate(4.5))  // multiple of 1.5 only
	assert.False(t, schema.Validate(6))   // integer and a multiple of 1.5: both match
}

func TestNot(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{"not": map[string]any{"type": "string"}})
	assert.True(t, schema.Validate(1))
	assert.False(t, schema.Validate("x"))
}

func TestUniqueItems(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{"uniqueItems": true})
	assert.True(t, schema.Validate([]any{1, 2, 3}))
	assert.False(t, schema.Validate([]any{1, 1}))
	assert.True(t, schema.Validate([]any{1, true})) // different types, not equal
}

func TestPropertyNames(t *testing.T) {
	schema := compileNoCheck(t, map[string]any{"propertyNames": map[string]any{"pattern": "^[a-z]+$"}})
	assert.True(t, schema.Validate(map[string]any{"abc": 1}))
	assert.False(t, schema.Validate(map[string]any{"ABC": 1}))
}
