package signing

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/signforge/jwt/internal/codec"
)

type ecdsaMethod struct {
	name    string
	hash    crypto.Hash
	curve   elliptic.Curve
	keySize int // bytes per signature half
}

var (
	ecdsaES256 = &ecdsaMethod{"ES256", crypto.SHA256, elliptic.P256(), 32}
	ecdsaES384 = &ecdsaMethod{"ES384", crypto.SHA384, elliptic.P384(), 48}
	ecdsaES512 = &ecdsaMethod{"ES512", crypto.SHA512, elliptic.P521(), 66}
)

func (m *ecdsaMethod) Alg() string       { return m.name }
func (m *ecdsaMethod) Hash() crypto.Hash { return m.hash }

// Sign produces the JOSE signature form: r and s as fixed-width big-endian
// values concatenated, not the ASN.1 form crypto/ecdsa emits by default.
func (m *ecdsaMethod) Sign(signingString string, key any) (string, error) {
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return "", fmt.Errorf("%w: %s signing requires *ecdsa.PrivateKey, got %T", ErrInvalidKeyType, m.name, key)
	}
	if priv.Curve != m.curve {
		return "", fmt.Errorf("%w: %s requires curve %s, key uses %s",
			ErrInvalidKeyType, m.name, m.curve.Params().Name, priv.Curve.Params().Name)
	}

	hasher := m.hash.New()
	hasher.Write([]byte(signingString))

	r, s, err := ecdsa.Sign(rand.Reader, priv, hasher.Sum(nil))
	if err != nil {
		return "", fmt.Errorf("signing: ecdsa sign failed: %w", err)
	}

	sig := make([]byte, 2*m.keySize)
	r.FillBytes(sig[:m.keySize])
	s.FillBytes(sig[m.keySize:])
	return codec.Base64URLEncode(sig), nil
}

func (m *ecdsaMethod) Verify(signingString string, signature string, key any) error {
	var pub *ecdsa.PublicKey
	switch k := key.(type) {
	case *ecdsa.PublicKey:
		pub = k
	case *ecdsa.PrivateKey:
		pub = &k.PublicKey
	default:
		return fmt.Errorf("%w: %s verification requires *ecdsa.PublicKey, got %T", ErrInvalidKeyType, m.name, key)
	}
	if pub.Curve != m.curve {
		return fmt.Errorf("%w: %s requires curve %s, key uses %s",
			ErrInvalidKeyType, m.name, m.curve.Params().Name, pub.Curve.Params().Name)
	}

	sig, err := codec.Base64URLDecode(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}
	if len(sig) != 2*m.keySize {
		return fmt.Errorf("%w: signature length %d, want %d", ErrVerification, len(sig), 2*m.keySize)
	}

	r := new(big.Int).SetBytes(sig[:m.keySize])
	s := new(big.Int).SetBytes(sig[m.keySize:])

	hasher := m.hash.New()
	hasher.Write([]byte(signingString))

	if !ecdsa.Verify(pub, hasher.Sum(nil), r, s) {
		return ErrVerification
	}
	return nil
}
