package jsonschemax

import (
	"math"
	"math/big"
	"reflect"

	"github.com/goccy/go-json"
)

// A JSON instance is represented with the dynamic types produced by decoding
// with a json.Decoder in UseNumber mode: nil, bool, json.Number, string,
// []any, and map[string]any. isInteger below is what tells an integral
// json.Number apart from a fractional one without losing precision to a
// float64 round-trip.

func isNull(v any) bool {
	return v == nil
}

func isBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// isNumber reports whether v is any non-boolean JSON number, integral or not.
func isNumber(v any) bool {
	switch v.(type) {
	case json.Number:
		return true
	case float64, float32, int, int64:
		return true
	default:
		return false
	}
}

// isInteger reports whether v is a non-boolean number with no fractional
// part. Finite-ness matters: +/-Inf are numbers but never integers.
func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if _, ok := new(big.Int).SetString(string(n), 10); ok {
			return true
		}
		f, ok := new(big.Float).SetString(string(n))
		if !ok {
			return false
		}
		_, acc := f.Int(nil)
		return acc == big.Exact
	case float64:
		return isFiniteIntegralFloat(n)
	case float32:
		return isFiniteIntegralFloat(float64(n))
	case int, int64:
		return true
	default:
		return false
	}
}

func isFiniteIntegralFloat(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	bf := new(big.Float).SetFloat64(f)
	_, acc := bf.Int(nil)
	return acc == big.Exact
}

// typePredicates maps the Draft-07 "type" keyword's vocabulary to the
// predicate that recognizes it.
var typePredicates = map[string]func(any) bool{
	"null":    isNull,
	"boolean": isBoolean,
	"object":  isObject,
	"array":   isArray,
	"number":  isNumber,
	"string":  isString,
	"integer": isInteger,
}

// jsonEqual implements the structural JSON equality used by enum, const, and
// uniqueItems: same JSON type, recursively equal values. A boolean and an
// integer that happen to share a numeric reading are NOT equal.
func jsonEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		if !ok {
			return false
		}
		return numberEqual(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !jsonEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// numberEqual compares two JSON numbers exactly, regardless of formatting
// (1 == 1.0 == 1e0).
func numberEqual(a, b json.Number) bool {
	ra, oka := asRat(a)
	rb, okb := asRat(b)
	if oka && okb {
		return ra.Cmp(rb) == 0
	}
	return string(a) == string(b)
}

// asRat parses a json.Number into an exact big.Rat, used by every numeric
// keyword comparison so float64 rounding never changes a verdict.
func asRat(n json.Number) (*big.Rat, bool) {
	r, ok := new(big.Rat).SetString(string(n))
	return r, ok
}

// jsonTypeName returns the Draft-07 type name for v, used by uniqueItems to
// tell apart same-looking-but-different-typed values such as 1 and true.
func jsonTypeName(v any) string {
	switch {
	case isNull(v):
		return "null"
	case isBoolean(v):
		return "boolean"
	case isInteger(v):
		return "integer"
	case isNumber(v):
		return "number"
	case isString(v):
		return "string"
	case isArray(v):
		return "array"
	case isObject(v):
		return "object"
	default:
		return "unknown"
	}
}
