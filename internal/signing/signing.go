// Package signing implements the signing algorithm registry and the
// cryptographic primitives behind each algorithm identifier. The registry is
// a fixed table built at init; algorithms cannot be registered at runtime and
// unknown identifiers always fail.
package signing

import (
	"crypto"
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned for identifiers with no registry entry.
	ErrUnknownAlgorithm = errors.New("signing: unknown algorithm")

	// ErrVerification is returned when a signature does not match. Failures
	// of the primitive are wrapped into it so callers need only one check.
	ErrVerification = errors.New("signing: verification failed")

	// ErrInvalidKeyType is returned when the key's Go type or curve cannot
	// be used with the method.
	ErrInvalidKeyType = errors.New("signing: invalid key type")
)

// Method is one signing algorithm. Implementations are stateless and shared;
// all per-call inputs arrive as arguments. The signature strings are the
// base64url-encoded JOSE form.
type Method interface {
	Alg() string
	Sign(signingString string, key any) (string, error)
	Verify(signingString string, signature string, key any) error
	Hash() crypto.Hash
}

var methods = map[string]Method{
	"HS256": hmacHS256,
	"HS384": hmacHS384,
	"HS512": hmacHS512,
	"RS256": rsaRS256,
	"RS384": rsaRS384,
	"RS512": rsaRS512,
	"ES256": ecdsaES256,
	"ES384": ecdsaES384,
	"ES512": ecdsaES512,
	"none":  noneMethod,
}

// GetMethod returns the Method for an algorithm identifier. Matching is
// exact and case-sensitive.
func GetMethod(alg string) (Method, error) {
	method, ok := methods[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	return method, nil
}
