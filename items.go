package jsonschemax

// compileItems implements "items": either a single schema applied to every
// element, or a list of schemas applied positionally (the remaining
// elements, if any, are left to "additionalItems").
func compileItems(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	if list, ok := value.([]any); ok {
		evs := make([]Evaluator, len(list))
		for i, sub := range list {
			ev, err := ctx.Compile(sub)
			if err != nil {
				return nil, err
			}
			evs[i] = ev
		}
		return func(instance any) bool {
			arr, ok := instance.([]any)
			if !ok {
				return true
			}
			n := len(evs)
			if len(arr) < n {
				n = len(arr)
			}
			for i := 0; i < n; i++ {
				if !evs[i](arr[i]) {
					return false
				}
			}
			return true
		}, nil
	}

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
			if !ev(el) {
				return false
			}
		}
		return true
	}, nil
}
