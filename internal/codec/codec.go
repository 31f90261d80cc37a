// Package codec provides the byte-level conversions used when assembling
// and parsing tokens: standard base64, unpadded URL-safe base64, and PEM
// body extraction. No cryptography lives here.
package codec

import (
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"
)

// Base64Encode encodes b using the standard base64 alphabet with padding.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode decodes a standard, padded base64 string.
func Base64Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid base64: %w", err)
	}
	return b, nil
}

// Base64URLEncode encodes b using the URL-safe alphabet with padding stripped,
// as required for token segments.
func Base64URLEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Base64URLDecode decodes an unpadded URL-safe base64 string. Padding is
// restored by the length-modulo-4 rule before decoding; a remainder of 1 can
// never occur in valid base64 and is rejected outright.
func Base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 0:
	case 2:
		s += "=="
	case 3:
		s += "="
	default:
		return nil, fmt.Errorf("codec: invalid base64url length %d", len(s))
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid base64url: %w", err)
	}
	return b, nil
}

// PEMDecode strips the BEGIN/END delimiter lines and internal whitespace from
// a PEM block and returns the decoded DER bytes along with the block type
// (e.g. "PUBLIC KEY", "PRIVATE KEY", "CERTIFICATE").
func PEMDecode(text string) ([]byte, string, error) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(text)))
	if block == nil {
		return nil, "", fmt.Errorf("codec: no PEM block found")
	}
	return block.Bytes, block.Type, nil
}
