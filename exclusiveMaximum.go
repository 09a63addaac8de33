package jsonschemax

import "fmt"

// compileExclusiveMaximum implements "exclusiveMaximum": instance < value.
// Draft-07 makes this a number (not the draft-04 boolean sibling of
// "maximum"), matched by its own TargetTypes gate in DefaultKeywords.
func compileExclusiveMaximum(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	bound, ok := asSchemaRat(value)
	if !ok {
		return nil, fmt.Errorf("%w: exclusiveMaximum is not a number", ErrSchemaCheckFailed)
	}
	return func(instance any) bool {
		n, ok := instanceRat(instance)
		if !ok {
			return true
		}
		return n.Cmp(bound) < 0
	}, nil
}
