// Package jwt implements creation, verification, and inspection of JSON Web
// Tokens (RFC 7519).
//
// Sign serializes a claims object into a compact three-segment token,
// Verify checks a received token's signature and temporal claims against a
// key, and Decode splits a token open without any cryptographic check, for
// inspection only.
//
// Symmetric (HS256/384/512) and asymmetric (RS256/384/512, ES256/384/512)
// algorithms are supported, plus an explicit opt-in "none" mode. Key material
// may be a raw secret, PEM-encoded keys or certificates, a JSON Web Key, or
// an already-parsed crypto key.
package jwt
