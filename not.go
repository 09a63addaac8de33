package jsonschemax

// compileNot implements "not": the instance must fail the subschema.
func compileNot(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	ev, err := ctx.Compile(value)
	if err != nil {
		return nil, err
	}
	return func(instance any) bool {
		return !ev(instance)
	}, nil
}
