package jsonschemax

import "fmt"

// compileMinimum implements "minimum": instance >= value.
func compileMinimum(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	bound, ok := asSchemaRat(value)
	if !ok {
		return nil, fmt.Errorf("%w: minimum is not a number", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		n, ok := instanceRat(instance)
		if !ok {
			return true
		}
		return n.Cmp(bound) >= 0
	}, nil
}
