package jsonschemax

import "errors"

// === Schema Compilation Errors ===
var (
	// ErrSchemaCheckFailed is returned when a candidate schema does not
	// validate against the active meta-schema. Keyword compilers also wrap
	// it when a keyword's value has the wrong shape or holds a regular
	// expression that does not compile.
	ErrSchemaCheckFailed = errors.New("schema failed meta-schema validation")

	// ErrRefResolution is returned when a $ref cannot be resolved to a
	// registered schema.
	ErrRefResolution = errors.New("$ref could not be resolved")

	// ErrRefFragmentNotFound is returned when the fragment half of a $ref
	// (or a keyword's own JSON Pointer descent) does not resolve within the
	// target schema document.
	ErrRefFragmentNotFound = errors.New("$ref fragment not found in target schema")

	// ErrUnsupportedSchemaShape is returned when a schema value is neither a
	// JSON object nor a JSON boolean.
	ErrUnsupportedSchemaShape = errors.New("schema must be a JSON object or boolean")

	// ErrUnknownDraft is returned when LoadMetaSchema is asked for a draft
	// this package does not ship.
	ErrUnknownDraft = errors.New("unknown or unsupported draft version")
)

// InvalidSchemaError wraps a compile-time schema defect: failed
// meta-validation, an unresolved $ref, or a JSON Pointer descent that ran off
// the edge of the schema document. Err is one of the sentinels above.
type InvalidSchemaError struct {
	// URI is the base URI in effect where the defect was found, if any.
	URI string
	Err error
}

func (e *InvalidSchemaError) Error() string {
	if e.URI != "" {
		return "invalid schema at " + e.URI + ": " + e.Err.Error()
	}
	return "invalid schema: " + e.Err.Error()
}

func (e *InvalidSchemaError) Unwrap() error { return e.Err }

// InvalidInstanceError is reserved for a future instance-level API; the
// current core surfaces instance invalidity as a plain `false` verdict from
// the compiled evaluator, never as an error.
type InvalidInstanceError struct {
	Err error
}

func (e *InvalidInstanceError) Error() string { return "invalid instance: " + e.Err.Error() }
func (e *InvalidInstanceError) Unwrap() error { return e.Err }

// JsonSchemaXError is the generic parent for misuse of the package's public
// API that is not itself a schema defect, such as requesting an unshipped
// draft from LoadMetaSchema.
type JsonSchemaXError struct {
	Err error
}

func (e *JsonSchemaXError) Error() string { return e.Err.Error() }
func (e *JsonSchemaXError) Unwrap() error { return e.Err }

func invalidSchemaErr(uri string, err error) *InvalidSchemaError {
	return &InvalidSchemaError{URI: uri, Err: err}
}
