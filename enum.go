package jsonschemax

// compileEnum implements "enum": the instance must equal one of the listed
// values, compared with Draft-07 JSON equality (jsonEqual).
func compileEnum(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	values, _ := value.([]any)
	return func(instance any) bool {
		for _, item := range values {
			if jsonEqual(instance, item) {
				return true
			}
		}
		return false
	}, nil
}
