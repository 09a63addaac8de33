package jsonschemax

import "fmt"

// compileType implements "type": either a single type name or a list of
// names, the instance matching if it satisfies any of them.
func compileType(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	switch v := value.(type) {
	case string:
		pred, ok := typePredicates[v]
		if !ok {
			return nil, fmt.Errorf("%w: unknown type %q", ErrSchemaCheckFailed, v)
		}
		return func(instance any) bool { return pred(instance) }, nil

	case []any:
		preds := make([]func(any) bool, 0, len(v))
		for _, name := range v {
			s, ok := name.(string)
			if !ok {
				return nil, fmt.Errorf("%w: type array entry is not a string", ErrSchemaCheckFailed)
			}
			pred, ok := typePredicates[s]
			if !ok {
				return nil, fmt.Errorf("%w: unknown type %q", ErrSchemaCheckFailed, s)
			}
			preds = append(preds, pred)
		}
		return func(instance any) bool {
			for _, pred := range preds {
				if pred(instance) {
					return true
				}
			}
			return false
		}, nil

	default:
		return nil, fmt.Errorf("%w: type must be a string or array", ErrSchemaCheckFailed)
	}
}
