package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config configures an Issuer.
type Config struct {
	// Algorithm used for every issued token. Empty means HS256.
	// AlgNone is rejected; unsecured tokens require the low-level Sign.
	Algorithm Algorithm

	// TokenTTL is the lifetime stamped into exp when the claims carry
	// none. Defaults to 15 minutes.
	TokenTTL time.Duration

	// Issuer is stamped into iss and required back on Validate.
	// Defaults to "jwt-service".
	Issuer string

	// ClockTolerance is applied to nbf/exp checks on Validate.
	ClockTolerance time.Duration

	// Clock overrides the time source. Nil means time.Now.
	Clock Clock
}

// DefaultConfig returns the Issuer defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgHS256,
		TokenTTL:  15 * time.Minute,
		Issuer:    "jwt-service",
	}
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}
	if c.Algorithm == AlgNone {
		return fmt.Errorf("%w: issuer cannot use the none algorithm", ErrInvalidConfig)
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("%w: token TTL cannot be negative", ErrInvalidConfig)
	}
	if c.ClockTolerance < 0 {
		return fmt.Errorf("%w: clock tolerance cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Issuer binds a key and configuration so tokens can be issued and checked
// with consistent defaults: iss, exp, and a unique jti are stamped on issue
// and iss is required back on validate. It holds no other state and is safe
// for concurrent use.
type Issuer struct {
	key       any
	algorithm Algorithm
	ttl       time.Duration
	issuer    string
	tolerance time.Duration
	clock     Clock
}

// NewIssuer creates an Issuer for the given key. HMAC secrets shorter than
// 32 bytes are rejected here even though the low-level Sign accepts them.
func NewIssuer(key any, config ...Config) (*Issuer, error) {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgHS256
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 15 * time.Minute
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "jwt-service"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := resolveMethod(cfg.Algorithm); err != nil {
		return nil, err
	}

	if strings.HasPrefix(string(cfg.Algorithm), "HS") {
		var secretLen int
		switch k := key.(type) {
		case string:
			secretLen = len(k)
		case []byte:
			secretLen = len(k)
		default:
			secretLen = -1 // non-textual material, checked at use
		}
		if secretLen >= 0 && secretLen < 32 {
			return nil, ErrInvalidSecretKey
		}
	}

	return &Issuer{
		key:       key,
		algorithm: cfg.Algorithm,
		ttl:       cfg.TokenTTL,
		issuer:    cfg.Issuer,
		tolerance: cfg.ClockTolerance,
		clock:     cfg.Clock,
	}, nil
}

// Issue signs the claims with the issuer's defaults stamped in: iss, exp
// (now + TTL), and a uuid jti, none of which overwrite caller values.
func (i *Issuer) Issue(claims MapClaims) (string, error) {
	enriched := make(MapClaims, len(claims)+3)
	for k, v := range claims {
		enriched[k] = v
	}

	if _, ok := enriched["iss"]; !ok {
		enriched["iss"] = i.issuer
	}
	if _, ok := enriched["exp"]; !ok {
		enriched["exp"] = i.clock.now().Add(i.ttl).Unix()
	}
	if _, ok := enriched["jti"]; !ok {
		enriched["jti"] = uuid.NewString()
	}

	return Sign(enriched, i.key, SignOptions{Algorithm: i.algorithm, Clock: i.clock})
}

// Validate verifies the token and additionally requires the iss claim to
// match this issuer. Failures are reported with their specific sentinel.
func (i *Issuer) Validate(token string) (*Token, error) {
	tok, err := Verify(token, i.key, VerifyOptions{
		Algorithm:      i.algorithm,
		ClockTolerance: i.tolerance,
		DetailedErrors: true,
		Clock:          i.clock,
	})
	if err != nil {
		return nil, err
	}

	if iss, _ := tok.Claims["iss"].(string); iss != i.issuer {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrTokenInvalid)
	}
	return tok, nil
}
