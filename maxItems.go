package jsonschemax

import "fmt"

// compileMaxItems implements "maxItems".
func compileMaxItems(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	limit, ok := asNonNegativeInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: maxItems is not a non-negative integer", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		arr, ok := instance.([]any)
		if !ok {
			return true
		}
		return len(arr) <= limit
	}, nil
}
