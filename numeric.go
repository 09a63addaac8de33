package jsonschemax

import (
	"math/big"

	"github.com/goccy/go-json"
)

// asSchemaRat converts a schema-authored keyword value (multipleOf, maximum,
// ...) to an exact big.Rat. Schema numbers decode the same way instance
// numbers do (json.Number in UseNumber mode), so this shares asRat's parsing.
func asSchemaRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		return asRat(n)
	case float64:
		r := new(big.Rat).SetFloat64(n)
		return r, r != nil
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	default:
		return nil, false
	}
}

// instanceRat converts a JSON instance value known to be a number (per
// isNumber) to an exact big.Rat.
func instanceRat(v any) (*big.Rat, bool) {
	return asSchemaRat(v)
}

// asNonNegativeInt converts a schema-authored size keyword (maxLength,
// maxItems, maxProperties, ...) to a non-negative int.
func asNonNegativeInt(v any) (int, bool) {
	r, ok := asSchemaRat(v)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return 0, false
	}
	return int(r.Num().Int64()), true
}
