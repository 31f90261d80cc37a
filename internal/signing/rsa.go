package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/signforge/jwt/internal/codec"
)

type rsaMethod struct {
	name string
	hash crypto.Hash
}

var (
	rsaRS256 = &rsaMethod{"RS256", crypto.SHA256}
	rsaRS384 = &rsaMethod{"RS384", crypto.SHA384}
	rsaRS512 = &rsaMethod{"RS512", crypto.SHA512}
)

func (m *rsaMethod) Alg() string       { return m.name }
func (m *rsaMethod) Hash() crypto.Hash { return m.hash }

func (m *rsaMethod) Sign(signingString string, key any) (string, error) {
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return "", fmt.Errorf("%w: %s signing requires *rsa.PrivateKey, got %T", ErrInvalidKeyType, m.name, key)
	}

	hasher := m.hash.New()
	hasher.Write([]byte(signingString))

	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, m.hash, hasher.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("signing: rsa sign failed: %w", err)
	}
	return codec.Base64URLEncode(sig), nil
}

func (m *rsaMethod) Verify(signingString string, signature string, key any) error {
	var pub *rsa.PublicKey
	switch k := key.(type) {
	case *rsa.PublicKey:
		pub = k
	case *rsa.PrivateKey:
		pub = &k.PublicKey
	default:
		return fmt.Errorf("%w: %s verification requires *rsa.PublicKey, got %T", ErrInvalidKeyType, m.name, key)
	}

	sig, err := codec.Base64URLDecode(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}

	hasher := m.hash.New()
	hasher.Write([]byte(signingString))

	if err := rsa.VerifyPKCS1v15(pub, m.hash, hasher.Sum(nil), sig); err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return nil
}
