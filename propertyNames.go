package jsonschemax

// compilePropertyNames implements "propertyNames": every instance key,
// treated as a string instance, must satisfy the subschema.
func compilePropertyNames(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	ev, err := ctx.Compile(value)
	if err != nil {
		return nil, err
	}
	return func(instance any) bool {
		obj, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		for key := range obj {
			if !ev(key) {
				return false
			}
		}
		return true
	}, nil
}
