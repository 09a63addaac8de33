// Package jsonpointer implements RFC 6901 JSON Pointer parsing and
// evaluation against already-decoded JSON values (map[string]any / []any /
// scalars), the shape produced by this module's JSON decoding layer.
//
// Grounded on itayankri-go-json-schema's jsonwalker package for the
// token-splitting/per-token-evaluation shape, extended with the ~0/~1
// unescape order and URI-fragment percent-decoding that jsonwalker omits.
package jsonpointer

import (
	"net/url"
	"strconv"
	"strings"
)

// Parse turns a JSON Pointer (optionally prefixed with "#", and optionally
// percent-encoded the way it would appear in a URI fragment) into its
// sequence of unescaped reference tokens.
//
// Empty input and "#" both yield the empty sequence, meaning "whole
// document". The ~1/~0 unescape order matters: "~01" must round-trip to
// "~1", never to "/".
func Parse(pointer string) []string {
	if pointer == "" || pointer == "#" {
		return []string{}
	}

	if decoded, err := url.PathUnescape(pointer); err == nil {
		pointer = decoded
	}

	pointer = strings.TrimPrefix(pointer, "#")
	pointer = strings.TrimPrefix(pointer, "/")

	// A bare "/" pointer (now the empty string after stripping the leading
	// slash) names the single empty-string token, not "no tokens" - do not
	// special-case it away.
	rawTokens := strings.Split(pointer, "/")
	tokens := make([]string, len(rawTokens))
	for i, t := range rawTokens {
		tokens[i] = unescapeToken(t)
	}
	return tokens
}

// unescapeToken replaces ~1 with / first, then ~0 with ~, per RFC 6901 §4.
func unescapeToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// Evaluate walks doc following tokens, one reference token per level. It
// reports whether the full path resolved, and the value found at it.
//
// On an object (map[string]any), a token matches a literal key. On an array
// ([]any), a token must be all digits and within bounds. Anything else is an
// unresolved path.
func Evaluate(doc any, tokens []string) (resolved bool, value any) {
	current := doc
	for _, token := range tokens {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[token]
			if !ok {
				return false, nil
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(v) {
				return false, nil
			}
			current = v[idx]
		default:
			return false, nil
		}
	}
	return true, current
}

// EvaluateString is a convenience wrapper combining Parse and Evaluate.
func EvaluateString(doc any, pointer string) (resolved bool, value any) {
	return Evaluate(doc, Parse(pointer))
}
