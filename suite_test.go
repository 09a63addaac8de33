package jsonschemax_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"github.com/ocavue/jsonschemax"
)

// manifest mirrors the small slice of JSON-Schema-Test-Suite's own layout
// this module carries: a list of fixture files to run, and a map from the
// absolute URI a fixture's schemas $ref to the on-disk file backing it.
type manifest struct {
	Tests   []string          `yaml:"tests"`
	Remotes map[string]string `yaml:"remotes"`
}

type suiteCase struct {
	Description string          `json:"description"`
	Schema      any             `json:"schema"`
	Tests       []suiteSubtest  `json:"tests"`
}

type suiteSubtest struct {
	Description string `json:"description"`
	Data        any    `json:"data"`
	Valid       bool   `json:"valid"`
}

// TestConformanceSuite runs every fixture file named in
// testdata/suite/manifest.yaml, the same assert-is_valid-equals-expected
// shape the original conformance harness drives against the full
// JSON-Schema-Test-Suite.
func TestConformanceSuite(t *testing.T) {
	const root = "testdata/suite"

	manifestBytes, err := os.ReadFile(filepath.Join(root, "manifest.yaml"))
	require.NoError(t, err)

	var m manifest
	require.NoError(t, yaml.Unmarshal(manifestBytes, &m))

	remotes := make(map[string]any, len(m.Remotes))
	for uri, relPath := range m.Remotes {
		data, err := os.ReadFile(filepath.Join(root, relPath))
		require.NoError(t, err)
		decoded, err := jsonschemax.DecodeJSON(data)
		require.NoError(t, err)
		remotes[uri] = decoded
	}

	for _, relPath := range m.Tests {
		relPath := relPath
		t.Run(relPath, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(root, relPath))
			require.NoError(t, err)

			decoded, err := jsonschemax.DecodeJSON(data)
			require.NoError(t, err)

			raw, ok := decoded.([]any)
			require.True(t, ok, "fixture file must decode to a JSON array")

			var cases []suiteCase
			for _, item := range raw {
				obj := item.(map[string]any)
				c := suiteCase{
					Description: obj["description"].(string),
					Schema:      obj["schema"],
				}
				for _, st := range obj["tests"].([]any) {
					stObj := st.(map[string]any)
					c.Tests = append(c.Tests, suiteSubtest{
						Description: stObj["description"].(string),
						Data:        stObj["data"],
						Valid:       stObj["valid"].(bool),
					})
				}
				cases = append(cases, c)
			}

			for _, c := range cases {
				c := c
				t.Run(c.Description, func(t *testing.T) {
					schema, err := jsonschemax.Compile(c.Schema, jsonschemax.WithRemoteSchemas(remotes))
					require.NoError(t, err)
					for _, st := range c.Tests {
						got := schema.Validate(st.Data)
						if got != st.Valid {
							t.Errorf("%s: got %v, want %v", st.Description, got, st.Valid)
						}
					}
				})
			}
		})
	}
}
