package jsonschemax

import (
	"fmt"
	"unicode/utf8"
)

// compileMinLength implements "minLength", counted in Unicode code points.
func compileMinLength(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	limit, ok := asNonNegativeInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: minLength is not a non-negative integer", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		s, ok := instance.(string)
		if !ok {
			return true
		}
		return utf8.RuneCountInString(s) >= limit
	}, nil
}
