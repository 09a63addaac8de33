package uriutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ocavue/jsonschemax/internal/uriutil"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		uri      string
		wantAbs  string
		wantFrag string
	}{
		{"https://website.org/a/b/c?q=1#h2", "https://website.org/a/b/c?q=1", "h2"},
		{"https://website.org/a/b/c?q=1#", "https://website.org/a/b/c?q=1", ""},
		{"https://website.org/a/b/c?q=1", "https://website.org/a/b/c?q=1", ""},
		{"#h2", "", "h2"},
	}
	for _, c := range cases {
		abs, frag := uriutil.Split(c.uri)
		assert.Equal(t, c.wantAbs, abs, c.uri)
		assert.Equal(t, c.wantFrag, frag, c.uri)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "https://example.com/schemas/child.json",
		uriutil.Resolve("https://example.com/schemas/root.json", "child.json"))
	assert.Equal(t, "https://other.com/x.json",
		uriutil.Resolve("https://example.com/schemas/root.json", "https://other.com/x.json"))
	assert.Equal(t, "foo.json", uriutil.Resolve("", "foo.json"))
}

func TestIsAbsolute(t *testing.T) {
	assert.True(t, uriutil.IsAbsolute("https://example.com/a"))
	assert.False(t, uriutil.IsAbsolute("child.json"))
	assert.False(t, uriutil.IsAbsolute("#/a/b"))
}
