// Package keys normalizes caller-supplied key material into the concrete
// crypto keys the signing methods operate on. Material arrives in one of a
// closed set of shapes — an opaque handle, a JSON Web Key, PEM-encoded
// public/private keys, a certificate, or a raw secret — and classification
// is exhaustive over that set. Keys are resolved per call and never cached.
package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/signforge/jwt/internal/codec"
)

var (
	// ErrUnsupportedKeyType is returned when the key is neither textual
	// material nor a recognized key handle.
	ErrUnsupportedKeyType = errors.New("keys: unsupported key type")

	// ErrParse is returned when PEM, DER, or JWK material is malformed.
	ErrParse = errors.New("keys: key parse failed")
)

// Usage states what the resolved key will be used for. Mismatches between
// usage and key shape (signing with a public key, say) are reported by the
// cryptographic primitive, not pre-validated here.
type Usage int

const (
	UsageSign Usage = iota
	UsageVerify
)

// Source tags the external shape the key material arrived in.
type Source int

const (
	SourceHandle Source = iota
	SourceJWK
	SourceSPKIPublic
	SourcePKCS8Private
	SourceCertificate
	SourceRawSecret
)

// Material is classified key material awaiting resolution.
type Material struct {
	Source Source

	text   string  // PEM text, JWK JSON, or raw secret
	jwkKey jwk.Key // set when the caller handed over a parsed JWK
	handle any     // pre-resolved crypto key
}

// Classify determines the shape of caller-supplied key material. The checks
// run in a fixed order: opaque handles pass through untouched, structured
// JWKs are taken as-is, then textual material is sniffed for PEM markers,
// and anything left is a raw symmetric secret.
func Classify(key any) (*Material, error) {
	switch k := key.(type) {
	case *Material:
		return k, nil
	case jwk.Key:
		return &Material{Source: SourceJWK, jwkKey: k}, nil
	case *rsa.PrivateKey, *rsa.PublicKey,
		*ecdsa.PrivateKey, *ecdsa.PublicKey,
		ed25519.PrivateKey, ed25519.PublicKey:
		return &Material{Source: SourceHandle, handle: k}, nil
	case []byte:
		return classifyText(string(k)), nil
	case string:
		return classifyText(k), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyType, key)
	}
}

func classifyText(text string) *Material {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "{") && strings.Contains(trimmed, `"kty"`):
		return &Material{Source: SourceJWK, text: trimmed}
	case strings.Contains(text, "PUBLIC"):
		return &Material{Source: SourceSPKIPublic, text: text}
	case strings.Contains(text, "PRIVATE"):
		return &Material{Source: SourcePKCS8Private, text: text}
	case strings.Contains(text, "CERTIFICATE"):
		return &Material{Source: SourceCertificate, text: text}
	default:
		return &Material{Source: SourceRawSecret, text: text}
	}
}

// Resolve produces the key the cryptographic primitive consumes: raw bytes
// for symmetric use, an *rsa/*ecdsa key otherwise.
func (m *Material) Resolve(usage Usage) (any, error) {
	switch m.Source {
	case SourceHandle:
		return m.handle, nil

	case SourceRawSecret:
		return []byte(m.text), nil

	case SourceJWK:
		return m.resolveJWK()

	case SourceSPKIPublic:
		der, _, err := codec.PEMDecode(m.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		pub, err := x509.ParsePKIXPublicKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return pub, nil

	case SourcePKCS8Private:
		der, _, err := codec.PEMDecode(m.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return parsePrivateKey(der)

	case SourceCertificate:
		der, _, err := codec.PEMDecode(m.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		spki, err := certificatePublicKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		pub, err := x509.ParsePKIXPublicKey(spki)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return pub, nil

	default:
		return nil, fmt.Errorf("%w: unknown source %d", ErrUnsupportedKeyType, m.Source)
	}
}

func (m *Material) resolveJWK() (any, error) {
	key := m.jwkKey
	if key == nil {
		parsed, err := jwk.ParseKey([]byte(m.text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key = parsed
	}

	var raw any
	if err := key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return raw, nil
}

// parsePrivateKey accepts the PRIVATE-marked PEM bodies seen in practice:
// PKCS#8, PKCS#1 (RSA), and SEC1 (EC).
func parsePrivateKey(der []byte) (any, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("%w: unrecognized private key encoding", ErrParse)
}
