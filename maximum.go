package jsonschemax

import "fmt"

// compileMaximum implements "maximum": instance <= value.
func compileMaximum(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	bound, ok := asSchemaRat(value)
	if !ok {
		return nil, fmt.Errorf("%w: maximum is not a number", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		n, ok := instanceRat(instance)
		if !ok {
			return true
		}
		return n.Cmp(bound) <= 0
	}, nil
}
