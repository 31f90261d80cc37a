package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/signforge/jwt/internal/keys"
	"github.com/signforge/jwt/internal/signing"
)

// VerifyOptions adjusts how Verify checks a token.
type VerifyOptions struct {
	// Algorithm is the algorithm the token must have been signed with.
	// Empty means HS256. The token header's alg must match exactly;
	// the header is never trusted to pick the algorithm.
	Algorithm Algorithm

	// ClockTolerance allows this much skew when checking nbf and exp.
	// Only the wrong-direction excess is compared against it.
	ClockTolerance time.Duration

	// DetailedErrors selects the diagnostic failure mode: verification
	// failures are returned as their specific sentinel instead of the
	// collapsed ErrTokenInvalid. Contract violations are always specific.
	DetailedErrors bool

	// Clock supplies the time claims are checked against. Nil means time.Now.
	Clock Clock
}

// Verify checks a token's structure, algorithm, temporal claims, and
// signature, in that order, and returns the decoded token on success.
//
// Failures caused by the token itself are reported as ErrTokenInvalid unless
// DetailedErrors is set, so callers cannot leak which stage rejected an
// attacker's input. Caller mistakes — a malformed token string, an unknown
// algorithm, unusable key material — are always reported specifically.
func Verify(token string, key any, options ...VerifyOptions) (*Token, error) {
	var opts VerifyOptions
	if len(options) > 0 {
		opts = options[0]
	}

	alg := opts.Algorithm
	if alg == "" {
		alg = AlgHS256
	}
	method, err := resolveMethod(alg)
	if err != nil {
		return nil, err
	}

	// PARSE
	if token == "" || len(token) > maxTokenLength {
		return nil, ErrTokenMalformed
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, ErrTokenMalformed
	}
	if alg != AlgNone && len(parts) != 3 {
		return nil, ErrTokenMalformed
	}
	headerSeg, claimsSeg := parts[0], parts[1]
	signatureSeg := ""
	if len(parts) == 3 {
		signatureSeg = parts[2]
	}

	fail := func(reason error) error {
		if opts.DetailedErrors {
			return reason
		}
		return ErrTokenInvalid
	}

	// ALG_CHECK: the expected algorithm governs; a header claiming any
	// other algorithm is rejected before key material is even touched.
	var header map[string]any
	if err := decodeSegment(headerSeg, &header); err != nil {
		return nil, fail(ErrTokenUnparsable)
	}
	if headerAlg, _ := header["alg"].(string); headerAlg != string(alg) {
		return nil, fail(ErrAlgorithmMismatch)
	}

	var claims MapClaims
	if err := decodeSegment(claimsSeg, &claims); err != nil {
		return nil, fail(ErrTokenUnparsable)
	}

	// CLAIM_CHECK
	now := opts.Clock.now().Unix()
	tolerance := int64(opts.ClockTolerance / time.Second)
	if v, ok := claims["nbf"]; ok {
		if nbf, ok := numericClaim(v); ok && nbf > now && nbf-now > tolerance {
			return nil, fail(ErrTokenNotYetValid)
		}
	}
	if v, ok := claims["exp"]; ok {
		if exp, ok := numericClaim(v); ok && exp <= now && now-exp > tolerance {
			return nil, fail(ErrTokenExpired)
		}
	}

	// SIGNATURE_CHECK over the exact received segments; the signing input
	// is never re-serialized.
	if alg == AlgNone {
		if signatureSeg != "" {
			return nil, fail(ErrSignatureInvalid)
		}
	} else {
		material, err := keys.Classify(key)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		resolved, err := material.Resolve(keys.UsageVerify)
		if err != nil {
			return nil, wrapKeyError(err)
		}
		if err := method.Verify(headerSeg+"."+claimsSeg, signatureSeg, resolved); err != nil {
			if errors.Is(err, signing.ErrVerification) {
				return nil, fail(ErrSignatureInvalid)
			}
			return nil, wrapKeyError(err)
		}
	}

	return &Token{
		Header:    header,
		Claims:    claims,
		Signature: signatureSeg,
		Raw:       token,
	}, nil
}
