package jsonschemax

import "fmt"

// compileMinProperties implements "minProperties".
func compileMinProperties(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	limit, ok := asNonNegativeInt(value)
	if !ok {
		return nil, fmt.Errorf("%w: minProperties is not a non-negative integer", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		obj, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		return len(obj) >= limit
	}, nil
}
