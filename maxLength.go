package jsonschemax

import (
	"fmt"
	"unicode/utf8"
)

// compileMaxLength implements "maxLength", counted in Unicode code points
// (Draft-07 §6.3.1), not bytes.
func compileMaxLength(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	limit, ok := asNonNegativeInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: maxLength is not a non-negative integer", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		s, ok := instance.(string)
		if !ok {
			return true
		}
		return utf8.RuneCountInString(s) <= limit
	}, nil
}
