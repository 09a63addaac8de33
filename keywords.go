package jsonschemax

// Evaluator is a pure function mapping a JSON instance to a boolean verdict.
// Sibling keyword evaluators compose by conjunction.
type Evaluator func(instance any) bool

// CompileContext is the back-reference a KeywordFunc receives so it can
// recursively compile its own subschemas. The dispatcher in compiler.go
// applies the $ref-sibling suppression rule and the pointer-descent rule
// before a KeywordFunc is ever invoked, so every KeywordFunc can assume it is
// compiling a normal, fully-present value.
type CompileContext struct {
	co  *compilation
	uri string
}

// BaseURI returns the absolute base URI in effect at the enclosing schema
// object (after applying any $id it declares).
func (c *CompileContext) BaseURI() string { return c.uri }

// Compile recursively compiles a subschema (boolean or object) found at the
// same base URI as the enclosing schema.
func (c *CompileContext) Compile(schema any) (Evaluator, error) {
	return c.co.compile(schema, c.uri, nil)
}

// KeywordFunc compiles one keyword's value into an Evaluator. schema is the
// full enclosing schema object, made available so a keyword can read its
// siblings (additionalItems reads items; additionalProperties reads
// properties and patternProperties).
type KeywordFunc func(value any, schema map[string]any, ctx *CompileContext) (Evaluator, error)

// KeywordSpec pairs a KeywordFunc with the instance types it targets for type
// gating. An empty TargetTypes means the keyword applies regardless of
// instance type (allOf, not, if/then/else, definitions, enum, const, type).
type KeywordSpec struct {
	Fn          KeywordFunc
	TargetTypes []string
}

// KeywordMap is the active keyword registry: keyword name -> compiler. $id
// and $ref are handled structurally by the compiler and never appear here.
type KeywordMap map[string]KeywordSpec

// DefaultKeywords returns a fresh Draft-07 keyword registry. Callers that
// want vendor keywords should copy this map (it is never shared) and add
// entries before passing it to WithKeywordMap.
func DefaultKeywords() KeywordMap {
	return KeywordMap{
		"definitions": {Fn: compileDefinitions},

		"type":  {Fn: compileType},
		"enum":  {Fn: compileEnum},
		"const": {Fn: compileConst},

		"multipleOf":       {Fn: compileMultipleOf, TargetTypes: []string{"number", "integer"}},
		"maximum":          {Fn: compileMaximum, TargetTypes: []string{"number", "integer"}},
		"exclusiveMaximum": {Fn: compileExclusiveMaximum, TargetTypes: []string{"number", "integer"}},
		"minimum":          {Fn: compileMinimum, TargetTypes: []string{"number", "integer"}},
		"exclusiveMinimum": {Fn: compileExclusiveMinimum, TargetTypes: []string{"number", "integer"}},

		"maxLength": {Fn: compileMaxLength, TargetTypes: []string{"string"}},
		"minLength": {Fn: compileMinLength, TargetTypes: []string{"string"}},
		"pattern":   {Fn: compilePattern, TargetTypes: []string{"string"}},

		"items":           {Fn: compileItems, TargetTypes: []string{"array"}},
		"additionalItems": {Fn: compileAdditionalItems, TargetTypes: []string{"array"}},
		"maxItems":        {Fn: compileMaxItems, TargetTypes: []string{"array"}},
		"minItems":        {Fn: compileMinItems, TargetTypes: []string{"array"}},
		"uniqueItems":     {Fn: compileUniqueItems, TargetTypes: []string{"array"}},
		"contains":        {Fn: compileContains, TargetTypes: []string{"array"}},

		"maxProperties":        {Fn: compileMaxProperties, TargetTypes: []string{"object"}},
		"minProperties":        {Fn: compileMinProperties, TargetTypes: []string{"object"}},
		"required":             {Fn: compileRequired, TargetTypes: []string{"object"}},
		"properties":           {Fn: compileProperties, TargetTypes: []string{"object"}},
		"patternProperties":    {Fn: compilePatternProperties, TargetTypes: []string{"object"}},
		"additionalProperties": {Fn: compileAdditionalProperties, TargetTypes: []string{"object"}},
		"dependencies":         {Fn: compileDependencies, TargetTypes: []string{"object"}},
		"propertyNames":        {Fn: compilePropertyNames, TargetTypes: []string{"object"}},

		"if":   {Fn: compileIf},
		"then": {Fn: compileThen},
		"else": {Fn: compileElse},

		"allOf": {Fn: compileAllOf},
		"anyOf": {Fn: compileAnyOf},
		"oneOf": {Fn: compileOneOf},
		"not":   {Fn: compileNot},
	}
}

func constEvaluator(v bool) Evaluator {
	return func(any) bool { return v }
}

// gateByType implements type gating: a type-targeted keyword evaluates to
// true for any instance whose JSON type is not one of targetTypes.
func gateByType(inner Evaluator, targetTypes []string) Evaluator {
	preds := make([]func(any) bool, 0, len(targetTypes))
	for _, t := range targetTypes {
		if p, ok := typePredicates[t]; ok {
			preds = append(preds, p)
		}
	}
	return func(instance any) bool {
		for _, p := range preds {
			if p(instance) {
				return inner(instance)
			}
		}
		return true
	}
}
