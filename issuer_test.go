package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssuerDefaults(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)
	assert.Equal(t, AlgHS256, issuer.algorithm)
	assert.Equal(t, 15*time.Minute, issuer.ttl)
	assert.Equal(t, "jwt-service", issuer.issuer)
}

func TestNewIssuerRejectsShortSecret(t *testing.T) {
	_, err := NewIssuer("the-secret")
	assert.ErrorIs(t, err, ErrInvalidSecretKey)

	_, err = NewIssuer([]byte("0123456789abcdef"))
	assert.ErrorIs(t, err, ErrInvalidSecretKey)

	// Exactly 32 bytes is the floor.
	_, err = NewIssuer([]byte("0123456789abcdef0123456789abcdef"))
	assert.NoError(t, err)

	// Non-HMAC algorithms carry no length floor; the key is checked at use.
	_, err = NewIssuer(testRSAPrivatePEM, Config{Algorithm: AlgRS256})
	assert.NoError(t, err)
}

func TestNewIssuerRejectsBadConfig(t *testing.T) {
	_, err := NewIssuer(testSecret, Config{Algorithm: AlgNone})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewIssuer(testSecret, Config{TokenTTL: -time.Minute})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewIssuer(testSecret, Config{ClockTolerance: -time.Second})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewIssuer(testSecret, Config{Algorithm: "XX999"})
	assert.ErrorIs(t, err, ErrAlgorithmNotFound)
}

func TestIssueStampsClaims(t *testing.T) {
	const now = int64(1700000000)

	issuer, err := NewIssuer(testSecret, Config{
		Issuer:   "auth-svc",
		TokenTTL: 5 * time.Minute,
		Clock:    fixedClock(now),
	})
	require.NoError(t, err)

	token, err := issuer.Issue(MapClaims{"sub": "user-42"})
	require.NoError(t, err)

	tok, err := issuer.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", tok.Claims["sub"])
	assert.Equal(t, "auth-svc", tok.Claims["iss"])

	exp, ok := numericClaim(tok.Claims["exp"])
	require.True(t, ok)
	assert.Equal(t, now+300, exp)

	iat, ok := numericClaim(tok.Claims["iat"])
	require.True(t, ok)
	assert.Equal(t, now, iat)

	jti, ok := tok.Claims["jti"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(jti)
	assert.NoError(t, err)
}

func TestIssueKeepsCallerClaims(t *testing.T) {
	issuer, err := NewIssuer(testSecret, Config{Clock: fixedClock(1700000000)})
	require.NoError(t, err)

	token, err := issuer.Issue(MapClaims{
		"iss": "jwt-service",
		"exp": int64(1700000000 + 60),
		"jti": "fixed-id",
	})
	require.NoError(t, err)

	tok, err := issuer.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", tok.Claims["jti"])
	exp, ok := numericClaim(tok.Claims["exp"])
	require.True(t, ok)
	assert.Equal(t, int64(1700000000+60), exp)
}

func TestIssueUniqueJTI(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		token, err := issuer.Issue(MapClaims{"sub": "x"})
		require.NoError(t, err)

		tok, err := issuer.Validate(token)
		require.NoError(t, err)

		jti := tok.Claims["jti"].(string)
		assert.False(t, seen[jti])
		seen[jti] = true
	}
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	authSvc, err := NewIssuer(testSecret, Config{Issuer: "auth-svc"})
	require.NoError(t, err)
	otherSvc, err := NewIssuer(testSecret, Config{Issuer: "other-svc"})
	require.NoError(t, err)

	token, err := authSvc.Issue(MapClaims{"sub": "x"})
	require.NoError(t, err)

	_, err = otherSvc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// A token with no iss at all is rejected too.
	bare, err := Sign(MapClaims{"sub": "x"}, testSecret)
	require.NoError(t, err)
	_, err = authSvc.Validate(bare)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateExpiry(t *testing.T) {
	const issuedAt = int64(1700000000)

	minter, err := NewIssuer(testSecret, Config{
		TokenTTL: time.Minute,
		Clock:    fixedClock(issuedAt),
	})
	require.NoError(t, err)

	token, err := minter.Issue(MapClaims{"sub": "x"})
	require.NoError(t, err)

	// Same configuration viewed two minutes later.
	checker, err := NewIssuer(testSecret, Config{
		TokenTTL: time.Minute,
		Clock:    fixedClock(issuedAt + 120),
	})
	require.NoError(t, err)

	_, err = checker.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// Tolerance wide enough to absorb the overshoot.
	lenient, err := NewIssuer(testSecret, Config{
		TokenTTL:       time.Minute,
		ClockTolerance: 2 * time.Minute,
		Clock:          fixedClock(issuedAt + 120),
	})
	require.NoError(t, err)

	_, err = lenient.Validate(token)
	assert.NoError(t, err)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	issuer, err := NewIssuer(testSecret)
	require.NoError(t, err)

	token, err := issuer.Issue(MapClaims{"sub": "x"})
	require.NoError(t, err)

	_, err = issuer.Validate(token + "x")
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}
