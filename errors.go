package jwt

import "errors"

// Contract violations. These indicate caller misuse rather than an untrusted
// input, and are always returned as-is regardless of VerifyOptions.
var (
	// ErrInvalidClaims indicates the payload is nil or does not serialize
	// to a JSON object.
	ErrInvalidClaims = errors.New("jwt: claims must be a non-nil JSON object")

	// ErrAlgorithmNotFound indicates an algorithm identifier with no
	// registry entry.
	ErrAlgorithmNotFound = errors.New("jwt: algorithm not found")

	// ErrTokenMalformed indicates the token string itself is structurally
	// unusable: empty, oversized, or missing segments.
	ErrTokenMalformed = errors.New("jwt: token is malformed")

	// ErrUnsupportedKeyType indicates key material that is neither textual
	// nor a recognized key handle.
	ErrUnsupportedKeyType = errors.New("jwt: unsupported key type")

	// ErrInvalidKey indicates key material that was recognized but could
	// not be parsed or used with the algorithm.
	ErrInvalidKey = errors.New("jwt: invalid key")

	// ErrInvalidConfig indicates an unusable Issuer configuration.
	ErrInvalidConfig = errors.New("jwt: invalid configuration")

	// ErrInvalidSecretKey indicates an HMAC secret below the Issuer's
	// 32-byte floor.
	ErrInvalidSecretKey = errors.New("jwt: secret key must be at least 32 bytes")
)

// Verification failures of untrusted input. By default Verify collapses all
// of these into ErrTokenInvalid so that callers cannot become an oracle for
// attackers; set VerifyOptions.DetailedErrors to receive the specific error.
var (
	// ErrTokenInvalid is the generic verification failure.
	ErrTokenInvalid = errors.New("jwt: token not verified")

	// ErrAlgorithmMismatch indicates the token header's alg differs from
	// the algorithm the verifier expects.
	ErrAlgorithmMismatch = errors.New("jwt: algorithm mismatch")

	// ErrTokenNotYetValid indicates nbf lies in the future beyond the
	// clock tolerance.
	ErrTokenNotYetValid = errors.New("jwt: token not yet valid")

	// ErrTokenExpired indicates exp lies in the past beyond the clock
	// tolerance.
	ErrTokenExpired = errors.New("jwt: token expired")

	// ErrSignatureInvalid indicates the signature does not match the
	// received header and payload bytes.
	ErrSignatureInvalid = errors.New("jwt: signature verification failed")

	// ErrTokenUnparsable indicates the header or payload segment did not
	// decode to valid JSON.
	ErrTokenUnparsable = errors.New("jwt: token segment decode failed")
)
