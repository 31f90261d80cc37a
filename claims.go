package jwt

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MapClaims is an unstructured claims payload. Well-known claims (iss, sub,
// aud, exp, nbf, iat, jti) are plain entries; unrecognized keys pass through
// untouched.
type MapClaims map[string]any

// numericClaim coerces the representations a numeric date claim can arrive
// in after JSON decoding or direct construction.
func numericClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case NumericDate:
		return n.Unix(), true
	default:
		return 0, false
	}
}

// normalizePayload turns the caller's payload into claims ready for signing:
// the payload must serialize to a JSON object, and iat is stamped from the
// clock when absent. The caller's map is never mutated.
func normalizePayload(payload any, clock Clock) (MapClaims, error) {
	if payload == nil {
		return nil, ErrInvalidClaims
	}

	var claims MapClaims
	switch p := payload.(type) {
	case MapClaims:
		if p == nil {
			return nil, ErrInvalidClaims
		}
		claims = make(MapClaims, len(p)+1)
		for k, v := range p {
			claims[k] = v
		}
	case map[string]any:
		if p == nil {
			return nil, ErrInvalidClaims
		}
		claims = make(MapClaims, len(p)+1)
		for k, v := range p {
			claims[k] = v
		}
	default:
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidClaims, err)
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, ErrInvalidClaims
		}
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&claims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidClaims, err)
		}
	}

	if v, ok := claims["iat"]; !ok || v == nil {
		claims["iat"] = clock.now().Unix()
	}
	return claims, nil
}
