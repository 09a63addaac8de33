package jsonschemax

// compileUniqueItems implements "uniqueItems": true": no two elements may be
// JSON-equal. A false value is not an assertion at all.
func compileUniqueItems(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	want, _ := value.(bool)
	if !want {
		return constEvaluator(true), nil
	}
	return func(instance any) bool {
		arr, ok := instance.([]any)
		if !ok {
			return true
		}
		for i := 0; i < len(arr); i++ {
			for j := i + 1; j < len(arr); j++ {
				if jsonTypeName(arr[i]) == jsonTypeName(arr[j]) && jsonEqual(arr[i], arr[j]) {
					return false
				}
			}
		}
		return true
	}, nil
}
