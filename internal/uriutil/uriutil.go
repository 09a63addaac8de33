// Package uriutil implements the small slice of RFC 3986 URI handling the
// compiler needs: splitting a URI into its absolute part and fragment, and
// resolving a reference URI against a base. net/url's ResolveReference and
// url.Parse do the underlying work; this package just shapes their results
// to how the compiler thinks about URIs and fragments.
package uriutil

import (
	"net/url"
	"strings"
)

// Split separates uri into its absolute part (scheme, authority, path, and
// query - no fragment) and its fragment.
func Split(uri string) (absoluteURI string, fragment string) {
	u, err := url.Parse(uri)
	if err != nil {
		parts := strings.SplitN(uri, "#", 2)
		if len(parts) == 2 {
			return parts[0], parts[1]
		}
		return uri, ""
	}
	fragment = u.Fragment
	u.Fragment = ""
	return u.String(), fragment
}

// IsAbsolute reports whether uri is an absolute URI (has both a scheme and
// an authority).
func IsAbsolute(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Resolve resolves ref against base per RFC 3986 reference resolution. If
// base is empty or unparsable, ref is returned unchanged (matching how an
// empty root_id behaves when a schema declares no enclosing $id).
func Resolve(base, ref string) string {
	if base == "" {
		return ref
	}
	baseURI, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURI, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURI.ResolveReference(refURI).String()
}
