package jsonschemax

// compileAdditionalItems implements "additionalItems": applies its subschema
// to every array element beyond the ones "items" addressed positionally. It
// has no effect unless the sibling "items" is itself a list of schemas.
func compileAdditionalItems(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	ev, err := ctx.Compile(value)
	if err != nil {
		return nil, err
	}
	itemsList, _ := schema["items"].([]any)
	return func(instance any) bool {
		arr, ok := instance.([]any)
		if !ok || itemsList == nil {
			return true
		}
		if len(arr) <= len(itemsList) {
			return true
		}
		for _, el := range arr[len(itemsList):] {
			if !ev(el) {
				return false
			}
		}
		return true
	}, nil
}
