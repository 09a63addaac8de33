package jsonschemax

import (
	"strconv"
	"sync"

	"github.com/ocavue/jsonschemax/internal/jsonpointer"
	"github.com/ocavue/jsonschemax/internal/uriutil"
)

// Schema is a compiled validator handle. It is also the unit of memoization
// in validator_by_uri: a handle is registered there before its evaluate
// field is populated, which is what makes cyclic $ref safe to compile -
// the cyclic edge closes over the handle, not over a finished Evaluator.
type Schema struct {
	mu       sync.RWMutex
	evaluate Evaluator
	source   any
	uri      string
}

// Validate reports whether instance satisfies the compiled schema.
func (s *Schema) Validate(instance any) bool {
	s.mu.RLock()
	ev := s.evaluate
	s.mu.RUnlock()
	return ev(instance)
}

// Source returns the original (decoded) schema document this handle was
// compiled from.
func (s *Schema) Source() any { return s.source }

// URI returns the absolute URI (with fragment, if any) this handle was
// registered under, or "" for the anonymous top-level compile result.
func (s *Schema) URI() string { return s.uri }

func (s *Schema) setEvaluate(ev Evaluator) {
	s.mu.Lock()
	s.evaluate = ev
	s.mu.Unlock()
}

// compilation is the per-Compile-call compilation context described by the
// spec: root_schema, root_id, schema_by_uri, validator_by_uri, keyword_map.
// check_schema is not held here; the Compiler applies it to the root schema
// before a compilation is built. It is discarded once Compile returns; only the Evaluator
// closures and Schema handles it built survive.
type compilation struct {
	rootSchema     any
	rootID         string
	schemaByURI    map[string]any
	validatorByURI map[string]*Schema
	keywordMap     KeywordMap
}

// Compiler is a reusable, builder-configured compilation front end. Its
// registries (remote schemas, keyword map) are shared across every Compile
// and CompileBatch call made through it and are guarded by mu so a Compiler
// can be built once and driven from multiple goroutines.
type Compiler struct {
	mu            sync.RWMutex
	keywordMap    KeywordMap
	remoteSchemas map[string]any
	checkSchema   bool
	metaOnce      sync.Once
	metaValidator *Schema
	metaErr       error
}

// NewCompiler returns a Compiler configured with the default Draft-07
// keyword registry, no remote schemas, and meta-schema checking enabled.
func NewCompiler() *Compiler {
	return &Compiler{
		keywordMap:    DefaultKeywords(),
		remoteSchemas: map[string]any{},
		checkSchema:   true,
	}
}

// SetKeywordMap replaces the active keyword registry.
func (c *Compiler) SetKeywordMap(km KeywordMap) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keywordMap = km
	return c
}

// RegisterKeyword adds or overrides a single keyword in the active
// registry, letting a caller extend the Draft-07 vocabulary without
// rebuilding the whole map.
func (c *Compiler) RegisterKeyword(name string, fn KeywordFunc, targetTypes ...string) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keywordMap == nil {
		c.keywordMap = DefaultKeywords()
	}
	c.keywordMap[name] = KeywordSpec{Fn: fn, TargetTypes: targetTypes}
	return c
}

// SetCheckSchema toggles whether Compile meta-validates the root schema
// before compiling it. Defaults to true.
func (c *Compiler) SetCheckSchema(check bool) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkSchema = check
	return c
}

// RegisterRemoteSchema makes a schema available to $ref resolution under
// the given absolute URI, without the compiler ever fetching it itself -
// the caller remains responsible for supplying remote schemas.
func (c *Compiler) RegisterRemoteSchema(uri string, schema any) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	abs, _ := uriutil.Split(uri)
	if abs == "" {
		abs = uri
	}
	c.remoteSchemas[abs] = schema
	return c
}

// Schema returns a previously registered remote schema by absolute URI.
func (c *Compiler) Schema(uri string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.remoteSchemas[uri]
	return s, ok
}

// SetSchema is an alias for RegisterRemoteSchema kept for callers migrating
// from the builder-accessor naming the compiled-validator cache uses
// elsewhere in this package family.
func (c *Compiler) SetSchema(uri string, schema any) *Compiler {
	return c.RegisterRemoteSchema(uri, schema)
}

// Compile compiles schema (a JSON boolean or object) into a *Schema using
// this Compiler's configured keyword map, remote schemas, and check-schema
// setting.
func (c *Compiler) Compile(schema any) (*Schema, error) {
	c.mu.RLock()
	keywordMap := c.keywordMap
	checkSchema := c.checkSchema
	remote := make(map[string]any, len(c.remoteSchemas))
	for k, v := range c.remoteSchemas {
		remote[k] = v
	}
	c.mu.RUnlock()

	if keywordMap == nil {
		keywordMap = DefaultKeywords()
	}

	if checkSchema {
		if err := c.validateAgainstMeta(schema); err != nil {
			return nil, err
		}
	}

	co := &compilation{
		schemaByURI:    map[string]any{},
		validatorByURI: map[string]*Schema{},
		keywordMap:     keywordMap,
	}
	co.schemaByURI[draft7MetaSchemaURI] = draft7MetaSchema()
	for k, v := range remote {
		co.schemaByURI[k] = v
	}
	scanEmbeddedIDs(schema, "", co.schemaByURI)

	co.rootSchema = schema
	if obj, ok := schema.(map[string]any); ok {
		if id, ok := obj["$id"].(string); ok {
			co.rootID = id
		}
	}

	ev, err := co.compile(schema, co.rootID, nil)
	if err != nil {
		return nil, err
	}
	return &Schema{evaluate: ev, source: schema}, nil
}

// CompileBatch compiles every schema in schemas, first registering all of
// their absolute URIs (root-level and embedded $id) so that $ref cycles
// between batch members resolve regardless of compile order, via a two-pass
// "register, then resolve" flow over this engine's eager-memo compiler.
func (c *Compiler) CompileBatch(schemas map[string]any) (map[string]*Schema, error) {
	c.mu.RLock()
	keywordMap := c.keywordMap
	checkSchema := c.checkSchema
	remote := make(map[string]any, len(c.remoteSchemas))
	for k, v := range c.remoteSchemas {
		remote[k] = v
	}
	c.mu.RUnlock()

	if keywordMap == nil {
		keywordMap = DefaultKeywords()
	}

	schemaByURI := map[string]any{draft7MetaSchemaURI: draft7MetaSchema()}
	for k, v := range remote {
		schemaByURI[k] = v
	}
	for uri, schema := range schemas {
		schemaByURI[uri] = schema
		scanEmbeddedIDs(schema, "", schemaByURI)
	}

	out := make(map[string]*Schema, len(schemas))
	for uri, schema := range schemas {
		if checkSchema {
			if err := c.validateAgainstMeta(schema); err != nil {
				return nil, err
			}
		}

		co := &compilation{
			schemaByURI:    schemaByURI,
			validatorByURI: map[string]*Schema{},
			keywordMap:     keywordMap,
			rootSchema:     schema,
		}
		if obj, ok := schema.(map[string]any); ok {
			if id, ok := obj["$id"].(string); ok {
				co.rootID = id
			}
		}

		ev, err := co.compile(schema, co.rootID, nil)
		if err != nil {
			return nil, err
		}
		out[uri] = &Schema{evaluate: ev, source: schema, uri: uri}
	}
	return out, nil
}

func (c *Compiler) validateAgainstMeta(schema any) error {
	c.metaOnce.Do(func() {
		mc := &Compiler{keywordMap: DefaultKeywords(), checkSchema: false}
		c.metaValidator, c.metaErr = mc.Compile(draft7MetaSchema())
	})
	if c.metaErr != nil {
		return c.metaErr
	}
	if !c.metaValidator.Validate(schema) {
		return invalidSchemaErr("", ErrSchemaCheckFailed)
	}
	return nil
}

// CompileOption configures a one-off Compile call made through the
// package-level Compile function.
type CompileOption func(*Compiler)

// WithKeywordMap overrides the active keyword registry.
func WithKeywordMap(km KeywordMap) CompileOption {
	return func(c *Compiler) { c.keywordMap = km }
}

// WithRemoteSchemas pre-populates the absolute-URI -> schema mapping used
// to resolve $ref without any network access.
func WithRemoteSchemas(schemas map[string]any) CompileOption {
	return func(c *Compiler) {
		for k, v := range schemas {
			c.RegisterRemoteSchema(k, v)
		}
	}
}

// WithCheckSchema toggles meta-schema validation of the root schema.
// Defaults to true.
func WithCheckSchema(check bool) CompileOption {
	return func(c *Compiler) { c.checkSchema = check }
}

// Compile is the package-level entry point: compile schema into a reusable
// validator using a fresh Compiler configured by opts. Most callers that
// only need one schema compiled reach for this instead of NewCompiler.
func Compile(schema any, opts ...CompileOption) (*Schema, error) {
	c := NewCompiler()
	for _, opt := range opts {
		opt(c)
	}
	return c.Compile(schema)
}

const draft7MetaSchemaURI = "http://json-schema.org/draft-07/schema"

// compile implements the five-case recursive algorithm from the component
// design: boolean short-circuit, $id rebasing, $ref resolution (memoized
// and cycle-safe through validatorByURI), keyword conjunction, and pointer
// descent into a residual ref_list.
func (co *compilation) compile(schema any, uri string, refList []string) (Evaluator, error) {
	switch s := schema.(type) {
	case bool:
		return constEvaluator(s), nil

	case map[string]any:
		currentURI := uri
		if idVal, ok := s["$id"].(string); ok && idVal != "" {
			currentURI = uriutil.Resolve(uri, idVal)
			if abs, _ := uriutil.Split(currentURI); abs != "" {
				co.schemaByURI[abs] = s
			}
		}

		if len(refList) == 0 {
			if refStr, ok := s["$ref"].(string); ok {
				return co.compileRef(currentURI, refStr)
			}
			return co.compileKeywords(s, currentURI)
		}
		return co.compileRefList(s, currentURI, refList)

	default:
		return nil, invalidSchemaErr(uri, ErrUnsupportedSchemaShape)
	}
}

// compileRef implements case 3: resolve a $ref to a (possibly still being
// populated) *Schema handle, installing the handle before recursing so
// cyclic references see a valid placeholder instead of looping forever.
func (co *compilation) compileRef(currentURI, ref string) (Evaluator, error) {
	refURI := uriutil.Resolve(currentURI, ref)

	if existing, ok := co.validatorByURI[refURI]; ok {
		return existing.Validate, nil
	}

	abs, fragment := uriutil.Split(refURI)
	var target any
	if abs != "" {
		t, ok := co.schemaByURI[abs]
		if !ok {
			return nil, invalidSchemaErr(refURI, ErrRefResolution)
		}
		target = t
	} else {
		target = co.rootSchema
	}

	handle := &Schema{uri: refURI}
	co.validatorByURI[refURI] = handle

	// A $ref target is the root of its own document: base URI resets to
	// the URI that document was found under (then to its own $id, detected
	// again inside compile), not inherited from wherever the $ref was
	// written.
	ev, err := co.compile(target, abs, jsonpointer.Parse(fragment))
	if err != nil {
		return nil, err
	}
	handle.setEvaluate(ev)
	handle.source = target
	return handle.Validate, nil
}

// compileKeywords implements case 4: conjunction of every present,
// registered keyword's evaluator.
func (co *compilation) compileKeywords(schema map[string]any, uri string) (Evaluator, error) {
	evaluators := make([]Evaluator, 0, len(schema))
	for name, value := range schema {
		spec, ok := co.keywordMap[name]
		if !ok {
			// Unknown keywords are ignored (Draft-07 4.3.1).
			continue
		}
		ev, err := co.invokeKeyword(spec, value, schema, uri, nil)
		if err != nil {
			return nil, err
		}
		evaluators = append(evaluators, ev)
	}
	return func(instance any) bool {
		for _, ev := range evaluators {
			if !ev(instance) {
				return false
			}
		}
		return true
	}, nil
}

// compileRefList implements case 5: the schema itself is the target of a
// $ref's residual pointer. If the next token names a known keyword present
// on the schema, hand off to that keyword's own compiler with one token
// consumed via the pointer-descent rule; otherwise fall back to plain JSON
// Pointer traversal of the schema object.
func (co *compilation) compileRefList(schema map[string]any, uri string, refList []string) (Evaluator, error) {
	key := refList[0]
	if spec, ok := co.keywordMap[key]; ok {
		if value, present := schema[key]; present {
			return co.invokeKeyword(spec, value, schema, uri, refList[1:])
		}
	}

	resolved, sub := jsonpointer.Evaluate(any(schema), refList)
	if !resolved {
		return nil, invalidSchemaErr(uri, ErrRefFragmentNotFound)
	}
	return co.compile(sub, uri, nil)
}

// invokeKeyword applies the $ref-sibling suppression rule and the
// pointer-descent rule before calling into the keyword's own Fn, then
// applies type gating to whatever Fn returns.
func (co *compilation) invokeKeyword(spec KeywordSpec, value any, schema map[string]any, uri string, refList []string) (Evaluator, error) {
	if _, hasRef := schema["$ref"]; hasRef && len(refList) == 0 {
		return constEvaluator(true), nil
	}

	if len(refList) > 0 {
		return co.stepInto(value, uri, refList)
	}

	ev, err := spec.Fn(value, schema, &CompileContext{co: co, uri: uri})
	if err != nil {
		return nil, err
	}
	if len(spec.TargetTypes) > 0 {
		ev = gateByType(ev, spec.TargetTypes)
	}
	return ev, nil
}

// stepInto is the generic pointer-descent rule: step one token into a
// keyword's own value (a map or a list) and recursively compile what is
// found there with the remaining tokens.
func (co *compilation) stepInto(value any, uri string, refList []string) (Evaluator, error) {
	token := refList[0]
	rest := refList[1:]

	switch v := value.(type) {
	case map[string]any:
		sub, ok := v[token]
		if !ok {
			return nil, invalidSchemaErr(uri, ErrRefFragmentNotFound)
		}
		return co.compile(sub, uri, rest)
	case []any:
		idx, err := strconv.Atoi(token)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, invalidSchemaErr(uri, ErrRefFragmentNotFound)
		}
		return co.compile(v[idx], uri, rest)
	default:
		return nil, invalidSchemaErr(uri, ErrRefFragmentNotFound)
	}
}

// scanEmbeddedIDs recursively pre-registers every $id found inside schema
// (root and nested) into schemaByURI before any keyword compiles, per the
// "prefer an eager scan for determinism" guidance: a $ref elsewhere in the
// same compile can then reach a sibling's $id regardless of tree-walk
// order.
func scanEmbeddedIDs(schema any, baseURI string, schemaByURI map[string]any) {
	switch s := schema.(type) {
	case map[string]any:
		uri := baseURI
		if id, ok := s["$id"].(string); ok && id != "" {
			uri = uriutil.Resolve(baseURI, id)
			if abs, _ := uriutil.Split(uri); abs != "" {
				if _, exists := schemaByURI[abs]; !exists {
					schemaByURI[abs] = s
				}
			}
		}
		for _, v := range s {
			scanEmbeddedIDs(v, uri, schemaByURI)
		}
	case []any:
		for _, v := range s {
			scanEmbeddedIDs(v, baseURI, schemaByURI)
		}
	}
}
