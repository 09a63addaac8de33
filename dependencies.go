package jsonschemax

import "fmt"

// compileDependencies implements Draft-07's single "dependencies" keyword:
// each key's value is either a list of required sibling property names, or a
// subschema applied to the whole instance. Unlike later drafts this is not
// split into dependentRequired/dependentSchemas.
func compileDependencies(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: dependencies is not an object", ErrSchemaCheckFailed)
	}

	type requiredDep struct {
		key  string
		need []string
	}
	type schemaDep struct {
		key string
		ev  Evaluator
	}
	var requiredDeps []requiredDep
	var schemaDeps []schemaDep

	for key, dep := range obj {
		switch d := dep.(type) {
		case []any:
			need := make([]string, 0, len(d))
			for _, v := range d {
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("%w: dependencies[%q] entry is not a string", ErrSchemaCheckFailed, key)
				}
				need = append(need, s)
			}
			requiredDeps = append(requiredDeps, requiredDep{key: key, need: need})
		default:
			ev, err := ctx.Compile(dep)
			if err != nil {
				return nil, err
			}
			schemaDeps = append(schemaDeps, schemaDep{key: key, ev: ev})
		}
	}

	return func(instance any) bool {
		inst, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		for _, d := range requiredDeps {
			if _, present := inst[d.key]; !present {
				continue
			}
			for _, need := range d.need {
				if _, ok := inst[need]; !ok {
					return false
				}
			}
		}
		for _, d := range schemaDeps {
			if _, present := inst[d.key]; !present {
				continue
			}
			if !d.ev(instance) {
				return false
			}
		}
		return true
	}, nil
}
