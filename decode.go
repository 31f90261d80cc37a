package jwt

import "strings"

// Decode splits a token and parses whatever decodes cleanly, without any
// cryptographic check. Segments that fail base64url or JSON decoding are
// left nil so the caller can inspect the rest.
//
// Decode must never be used for trust decisions; it exists for inspection
// and debugging only.
func Decode(token string) *Token {
	t := &Token{Raw: token}

	parts := strings.Split(token, ".")

	var header map[string]any
	if err := decodeSegment(parts[0], &header); err == nil {
		t.Header = header
	}
	if len(parts) > 1 {
		var claims MapClaims
		if err := decodeSegment(parts[1], &claims); err == nil {
			t.Claims = claims
		}
	}
	if len(parts) > 2 {
		t.Signature = parts[2]
	}
	return t
}
