package jsonschemax

import "fmt"

// compileRequired implements "required": every named property must be
// present on the instance.
func compileRequired(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: required is not an array", ErrSchemaCheckFailed)
	}
	keys := make([]string, 0, len(list))
	for _, v := range list {
		k, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: required entry is not a string", ErrSchemaCheckFailed)
		}
		keys = append(keys, k)
	}
	return func(instance any) bool {
		obj, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		for _, k := range keys {
			if _, present := obj[k]; !present {
				return false
			}
		}
		return true
	}, nil
}
