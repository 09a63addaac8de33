package jsonschemax

import "fmt"

// compileAllOf implements "allOf": the instance must satisfy every listed
// subschema.
func compileAllOf(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: allOf is not an array", ErrSchemaCheckFailed)
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
		for _, ev := range evs {
			if !ev(instance) {
				return false
			}
		}
		return true
	}, nil
}
