package signing

import (
	"crypto"
	"crypto/hmac"
	"fmt"

	"github.com/signforge/jwt/internal/codec"
)

type hmacMethod struct {
	name string
	hash crypto.Hash
}

var (
	hmacHS256 = &hmacMethod{"HS256", crypto.SHA256}
	hmacHS384 = &hmacMethod{"HS384", crypto.SHA384}
	hmacHS512 = &hmacMethod{"HS512", crypto.SHA512}
)

func (m *hmacMethod) Alg() string       { return m.name }
func (m *hmacMethod) Hash() crypto.Hash { return m.hash }

func hmacKeyBytes(key any) ([]byte, error) {
	switch k := key.(type) {
	case []byte:
		return k, nil
	case string:
		return []byte(k), nil
	default:
		return nil, fmt.Errorf("%w: HMAC key must be []byte or string, got %T", ErrInvalidKeyType, key)
	}
}

func (m *hmacMethod) Sign(signingString string, key any) (string, error) {
	keyBytes, err := hmacKeyBytes(key)
	if err != nil {
		return "", err
	}
	if !m.hash.Available() {
		return "", fmt.Errorf("signing: hash function %v not available", m.hash)
	}

	hasher := hmac.New(m.hash.New, keyBytes)
	hasher.Write([]byte(signingString))
	return codec.Base64URLEncode(hasher.Sum(nil)), nil
}

func (m *hmacMethod) Verify(signingString string, signature string, key any) error {
	keyBytes, err := hmacKeyBytes(key)
	if err != nil {
		return err
	}
	if !m.hash.Available() {
		return fmt.Errorf("signing: hash function %v not available", m.hash)
	}

	sig, err := codec.Base64URLDecode(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}

	hasher := hmac.New(m.hash.New, keyBytes)
	hasher.Write([]byte(signingString))

	// hmac.Equal is constant time.
	if !hmac.Equal(sig, hasher.Sum(nil)) {
		return ErrVerification
	}
	return nil
}
