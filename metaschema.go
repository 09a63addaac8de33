package jsonschemax

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
)

// Packaged meta-schema data: a go:embed directive plus a one-time decode, so
// the module stays self-contained and never reaches out to
// json-schema.org at runtime.
//
//go:embed schemas/draft7.json
var schemasFS embed.FS

var (
	draft7Once   sync.Once
	draft7Cached any
	draft7Err    error
)

// draft7MetaSchema returns the decoded Draft-07 meta-schema document, used
// both to self-validate compiled schemas and to seed schemaByURI under its
// own $id so a $ref to "http://json-schema.org/draft-07/schema#" resolves
// without any remote fetch.
func draft7MetaSchema() any {
	draft7Once.Do(func() {
		data, err := schemasFS.ReadFile("schemas/draft7.json")
		if err != nil {
			draft7Err = err
			return
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			draft7Err = err
			return
		}
		draft7Cached = v
	})
	if draft7Err != nil {
		panic(draft7Err)
	}
	return draft7Cached
}

// LoadMetaSchema returns the decoded meta-schema document for draft, by
// name ("draft-07") or by its canonical $id
// ("http://json-schema.org/draft-07/schema"). Only Draft-07 ships today;
// the name/URI indirection is what lets a future draft join this function
// without changing its signature.
func LoadMetaSchema(draft string) (any, error) {
	switch draft {
	case "draft-07", "draft7", draft7MetaSchemaURI, draft7MetaSchemaURI + "#":
		return draft7MetaSchema(), nil
	default:
		return nil, &JsonSchemaXError{Err: fmt.Errorf("%w: %q", ErrUnknownDraft, draft)}
	}
}
