package jwt

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signforge/jwt/internal/codec"
	"github.com/signforge/jwt/internal/keys"
	"github.com/signforge/jwt/internal/signing"
)

// SignOptions adjusts how Sign assembles and signs a token.
type SignOptions struct {
	// Algorithm selects the signing algorithm. Empty means HS256.
	Algorithm Algorithm

	// Header fields are merged into the default {"typ":"JWT"} header.
	// A nil value deletes the field, so a header without typ can be
	// produced. The alg field is always overwritten with the resolved
	// algorithm, whatever the caller supplies.
	Header map[string]any

	// Clock supplies the time used to stamp iat. Nil means time.Now.
	Clock Clock
}

// Sign serializes payload into a signed compact token. The payload must
// marshal to a JSON object; iat is stamped with the current Unix time when
// absent. With AlgNone the result has no signature segment.
func Sign(payload any, key any, options ...SignOptions) (string, error) {
	var opts SignOptions
	if len(options) > 0 {
		opts = options[0]
	}

	alg := opts.Algorithm
	if alg == "" {
		alg = AlgHS256
	}
	method, err := resolveMethod(alg)
	if err != nil {
		return "", err
	}

	claims, err := normalizePayload(payload, opts.Clock)
	if err != nil {
		return "", err
	}

	headerJSON, err := json.Marshal(buildHeader(opts.Header, alg))
	if err != nil {
		return "", fmt.Errorf("jwt: header marshal failed: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}

	signingInput := codec.Base64URLEncode(headerJSON) + "." + codec.Base64URLEncode(claimsJSON)

	if alg == AlgNone {
		return signingInput, nil
	}

	material, err := keys.Classify(key)
	if err != nil {
		return "", wrapKeyError(err)
	}
	resolved, err := material.Resolve(keys.UsageSign)
	if err != nil {
		return "", wrapKeyError(err)
	}

	signature, err := method.Sign(signingInput, resolved)
	if err != nil {
		return "", wrapKeyError(err)
	}
	return signingInput + "." + signature, nil
}

func buildHeader(extra map[string]any, alg Algorithm) map[string]any {
	header := map[string]any{"typ": "JWT"}
	for k, v := range extra {
		if v == nil {
			delete(header, k)
			continue
		}
		header[k] = v
	}
	header["alg"] = string(alg)
	return header
}

// wrapKeyError maps internal key and key-type failures onto the public
// contract-violation sentinels. Anything else (a failing crypto primitive)
// propagates untouched; it is never retried.
func wrapKeyError(err error) error {
	switch {
	case errors.Is(err, keys.ErrUnsupportedKeyType):
		return fmt.Errorf("%w: %v", ErrUnsupportedKeyType, err)
	case errors.Is(err, keys.ErrParse):
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	case errors.Is(err, signing.ErrInvalidKeyType):
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	default:
		return err
	}
}
