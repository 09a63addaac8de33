package jsonschemax

// compileIf implements "if"/"then"/"else" as one unit, the way the keyword
// is specified: "then" and "else" have no effect of their own and are only
// read here, as "if"'s siblings.
func compileIf(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	ifEv, err := ctx.Compile(value)
	if err != nil {
		return nil, err
	}

	thenSchema, hasThen := schema["then"]
	if !hasThen {
		thenSchema = true
	}
	thenEv, err := ctx.Compile(thenSchema)
	if err != nil {
		return nil, err
	}

	elseSchema, hasElse := schema["else"]
	if !hasElse {
		elseSchema = true
	}
	elseEv, err := ctx.Compile(elseSchema)
	if err != nil {
		return nil, err
	}

	return func(instance any) bool {
		if ifEv(instance) {
			return thenEv(instance)
		}
		return elseEv(instance)
	}, nil
}

// compileThen and compileElse are no-ops: "if" reads their subschemas
// directly as siblings, so as standalone keywords they assert nothing.
func compileThen(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	return constEvaluator(true), nil
}

func compileElse(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	return constEvaluator(true), nil
}
