package jsonschemax

import (
	"fmt"
	"regexp"
)

// compilePatternProperties implements "patternProperties": every instance
// key matching a pattern key must satisfy that pattern's subschema. A key
// can match more than one pattern; all matching subschemas must pass.
func compilePatternProperties(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: patternProperties is not an object", ErrSchemaCheckFailed)
	}

	type entry struct {
		re *regexp.Regexp
		ev Evaluator
	}
	entries := make([]entry, 0, len(obj))
	for pat, sub := range obj {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid patternProperties key %q: %w", ErrSchemaCheckFailed, pat, err)
		}
		ev, err := ctx.Compile(sub)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{re: re, ev: ev})
	}

	return func(instance any) bool {
		inst, ok := instance.(map[string]any)
		if !ok {
			return true
		}
		for _, e := range entries {
			for key, v := range inst {
				if e.re.MatchString(key) {
					if !e.ev(v) {
						return false
					}
				}
			}
		}
		return true
	}, nil
}
