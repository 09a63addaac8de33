package jsonschemax

import "fmt"

// compileOneOf implements "oneOf": the instance must satisfy exactly one
// listed subschema.
func compileOneOf(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: oneOf is not an array", ErrSchemaCheckFailed)
	}
	evs := make([]Evaluator, len(list))
	for i, sub := range list {
		ev, err := ctx.Compile(sub)
		if err != nil {
			return nil, err
		}
		evs[i] = ev
	}
	return func(instance any) bool {
		count := 0
		for _, ev := range evs {
			if ev(instance) {
				count++
			}
		}
		return count == 1
	}, nil
}
