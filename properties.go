package jsonschemax

import "fmt"

// compileProperties implements "properties": each named subschema applies
// only to instances that actually have that key.
func compileProperties(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: properties is not an object", ErrSchemaCheckFailed)
	}
	evs := make(map[string]Evaluator, len(obj))
	for key, sub := range obj {
		ev, err := ctx.Compile(sub)
		if err != nil {
			return nil, err
		}
		evs[key] = ev
	}
	return func(instance any) bool {
		inst, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		for key, ev := range evs {
			if v, present := inst[key]; present {
				if !ev(v) {
					return false
				}
			}
		}
		return true
	}, nil
}
