package jsonschemax

import (
	"fmt"
	"regexp"
)

// compilePattern implements "pattern" with Go's RE2 engine (regexp.Compile).
// Draft-07 specifies ECMA-262 regexes; RE2 covers the common subset the test
// suite exercises, and we don't pull in a backtracking engine just for the
// rare lookaround pattern.
func compilePattern(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error) {
	pat, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: pattern is not a string", ErrSchemaCheckFailed)
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pattern %q: %w", ErrSchemaCheckFailed, pat, err)
	}
	return func(instance any) bool {
		s, ok := instance.(string)
		if !ok {
			return true
		}
		return re.MatchString(s)
	}, nil
}
