package jsonpointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ocavue/jsonschemax/internal/jsonpointer"
)

func rfc6901Doc() map[string]any {
	return map[string]any{
		"foo":  []any{"bar", "baz"},
		"":     float64(0),
		"a/b":  float64(1),
		"c%d":  float64(2),
		"e^f":  float64(3),
		"g|h":  float64(4),
		"i\\j": float64(5),
		`k"l`:  float64(6),
		" ":    float64(7),
		"m~n":  float64(8),
	}
}

func TestEvaluateStringRFC6901Unencoded(t *testing.T) {
	doc := rfc6901Doc()

	cases := []struct {
		pointer  string
		expected any
	}{
		{"", doc},
		{"/foo", doc["foo"]},
		{"/foo/0", "bar"},
		{"/", float64(0)},
		{"/a~1b", float64(1)},
		{"/c%d", float64(2)},
		{"/e^f", float64(3)},
		{"/g|h", float64(4)},
		{"/i\\j", float64(5)},
		{`/k"l`, float64(6)},
		{"/ ", float64(7)},
		{"/m~0n", float64(8)},
	}
	for _, c := range cases {
		resolved, value := jsonpointer.EvaluateString(doc, c.pointer)
		assert.True(t, resolved, c.pointer)
		assert.Equal(t, c.expected, value, c.pointer)
	}
}

func TestEvaluateStringRFC6901Fragment(t *testing.T) {
	doc := rfc6901Doc()

	cases := []struct {
		pointer  string
		expected any
	}{
		{"#", doc},
		{"#/foo", doc["foo"]},
		{"#/foo/0", "bar"},
		{"#/", float64(0)},
		{"#/a~1b", float64(1)},
		{"#/c%25d", float64(2)},
		{"#/e%5Ef", float64(3)},
		{"#/g%7Ch", float64(4)},
		{"#/i%5Cj", float64(5)},
		{"#/k%22l", float64(6)},
		{"#/%20", float64(7)},
		{"#/m~0n", float64(8)},
	}
	for _, c := range cases {
		resolved, value := jsonpointer.EvaluateString(doc, c.pointer)
		assert.True(t, resolved, c.pointer)
		assert.Equal(t, c.expected, value, c.pointer)
	}
}

func TestUnescapeOrder(t *testing.T) {
	// "~01" must become "~1", never "/" - the substitution order matters.
	doc := map[string]any{"~1": float64(1), "/": float64(2)}
	resolved, value := jsonpointer.EvaluateString(doc, "~01")
	assert.True(t, resolved)
	assert.Equal(t, float64(1), value)
}

func TestEvaluateArrayIndexOutOfBounds(t *testing.T) {
	resolved, _ := jsonpointer.Evaluate([]any{"a", "b"}, []string{"5"})
	assert.False(t, resolved)
}

func TestEvaluateMissingKey(t *testing.T) {
	resolved, _ := jsonpointer.Evaluate(map[string]any{"a": 1}, []string{"b"})
	assert.False(t, resolved)
}

func TestEvaluateThroughScalar(t *testing.T) {
	resolved, _ := jsonpointer.Evaluate("a string", []string{"0"})
	assert.False(t, resolved)
}
