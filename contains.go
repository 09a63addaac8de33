package jsonschemax

// compileContains implements "contains": at least one array element must
// satisfy the subschema.
func compileContains(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	ev, err := ctx.Compile(value)
	if err != nil {
		return nil, err
	}
	return func(instance any) bool {
		arr, ok := instance.([]any)
		if !ok {
			return true
		}
		for _, el := range arr {
			if ev(el) {
				return true
			}
		}
		return false
	}, nil
}
