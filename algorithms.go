package jwt

import (
	"fmt"

	"github.com/signforge/jwt/internal/signing"
)

// Algorithm identifies a signing algorithm. Every identifier maps to exactly
// one primitive configuration in the registry; unknown identifiers are
// rejected, never defaulted.
type Algorithm string

const (
	// AlgHS256 uses HMAC with SHA-256. This is the default algorithm.
	AlgHS256 Algorithm = "HS256"
	// AlgHS384 uses HMAC with SHA-384.
	AlgHS384 Algorithm = "HS384"
	// AlgHS512 uses HMAC with SHA-512.
	AlgHS512 Algorithm = "HS512"

	// AlgRS256 uses RSASSA-PKCS1-v1.5 with SHA-256.
	AlgRS256 Algorithm = "RS256"
	// AlgRS384 uses RSASSA-PKCS1-v1.5 with SHA-384.
	AlgRS384 Algorithm = "RS384"
	// AlgRS512 uses RSASSA-PKCS1-v1.5 with SHA-512.
	AlgRS512 Algorithm = "RS512"

	// AlgES256 uses ECDSA over P-256 with SHA-256.
	AlgES256 Algorithm = "ES256"
	// AlgES384 uses ECDSA over P-384 with SHA-384.
	AlgES384 Algorithm = "ES384"
	// AlgES512 uses ECDSA over P-521 with SHA-512.
	AlgES512 Algorithm = "ES512"

	// AlgNone disables signing entirely and produces two-segment tokens.
	// It must be selected explicitly; no code path falls back to it.
	AlgNone Algorithm = "none"
)

// resolveMethod looks the algorithm up in the registry. An unrecognized
// identifier is a contract violation, reported as ErrAlgorithmNotFound.
func resolveMethod(alg Algorithm) (signing.Method, error) {
	method, err := signing.GetMethod(string(alg))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, alg)
	}
	return method, nil
}
