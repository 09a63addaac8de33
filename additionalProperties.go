package jsonschemax

import "regexp"

// compileAdditionalProperties implements "additionalProperties": applies its
// subschema to every instance key not covered by a sibling "properties" name
// or a sibling "patternProperties" pattern.
func compileAdditionalProperties(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	ev, err := ctx.Compile(value)
	if err != nil {
		return nil, err
	}

	properties, _ := schema["properties"].(map[string]any)

	var patterns []*regexp.Regexp
	if pp, ok := schema["patternProperties"].(map[string]any); ok {
		for pat := range pp {
			if re, err := regexp.Compile(pat); err == nil {
				patterns = append(patterns, re)
			}
		}
	}

	return func(instance any) bool {
		inst, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		for key, v := range inst {
			if _, named := properties[key]; named {
				continue
			}
			matched := false
			for _, re := range patterns {
				if re.MatchString(key) {
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			if !ev(v) {
				return false
			}
		}
		return true
	}, nil
}
