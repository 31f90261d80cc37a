package signing

import (
	"crypto"
	"fmt"
)

// unsecuredMethod implements the "none" algorithm: no signature is produced
// and only an empty signature verifies. It exists for interoperability with
// systems that intentionally disable signing and must be selected explicitly
// by the caller; nothing in this package defaults to it.
type unsecuredMethod struct{}

var noneMethod = &unsecuredMethod{}

func (m *unsecuredMethod) Alg() string       { return "none" }
func (m *unsecuredMethod) Hash() crypto.Hash { return 0 }

func (m *unsecuredMethod) Sign(signingString string, key any) (string, error) {
	return "", nil
}

func (m *unsecuredMethod) Verify(signingString string, signature string, key any) error {
	if signature != "" {
		return fmt.Errorf("%w: unsecured token carries a signature", ErrVerification)
	}
	return nil
}
