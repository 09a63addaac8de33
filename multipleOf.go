package jsonschemax

import (
	"fmt"
	"math/big"
)

// compileMultipleOf implements "multipleOf": instance / value must be an
// integer, checked exactly with big.Rat so float rounding never flips a
// verdict at the boundary.
func compileMultipleOf(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	// Positivity is the meta-schema's job (exclusiveMinimum: 0): a compiler
	// run with check-schema disabled on a degenerate multipleOf: 0 divides by
	// zero here same as it would in the original.
	divisor, ok := asSchemaRat(value)
	if !ok {
		return nil, fmt.Errorf("%w: multipleOf is not a number", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		n, ok := instanceRat(instance)
		if !ok {
			return true
		}
		quotient := new(big.Rat).Quo(n, divisor)
		return quotient.IsInt()
	}, nil
}
