package jsonschemax

import "fmt"

// compileExclusiveMinimum implements "exclusiveMinimum": instance > value.
func compileExclusiveMinimum(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	bound, ok := asSchemaRat(value)
	if !ok {
		return nil, fmt.Errorf("%w: exclusiveMinimum is not a number", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		n, ok := instanceRat(instance)
		if !ok {
			return true
		}
		return n.Cmp(bound) > 0
	}, nil
}
