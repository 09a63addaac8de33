package jsonschemax

// compileConst implements "const": the instance must be JSON-equal to value.
func compileConst(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	return func(instance any) bool {
		return jsonEqual(instance, value)
	}, nil
}
