package jsonschemax

import (
	"bytes"

	"github.com/goccy/go-json"
)

// DecodeJSON decodes raw JSON bytes the way every schema and instance in
// this package is expected to be decoded: UseNumber mode, so integers and
// floats stay tellable apart without a lossy float64 round-trip.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// CompileJSON decodes raw schema bytes with DecodeJSON and compiles the
// result, the convenience entry point for callers holding serialized JSON
// rather than an already-decoded schema tree.
func CompileJSON(data []byte, opts ...CompileOption) (*Schema, error) {
	schema, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Compile(schema, opts...)
}
