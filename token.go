package jwt

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/signforge/jwt/internal/codec"
)

// Tokens beyond this size are rejected before any decoding work.
const maxTokenLength = 8192

// Token is the decoded form of a compact token. Header and Claims are the
// parsed JSON segments; Signature keeps the raw base64url third segment and
// Raw the original string.
type Token struct {
	Header    map[string]any
	Claims    MapClaims
	Signature string
	Raw       string
}

// decodeSegment base64url-decodes one token segment and unmarshals the JSON
// within. Numbers are kept as json.Number so large timestamps survive intact.
func decodeSegment(segment string, dest any) error {
	raw, err := codec.Base64URLDecode(segment)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(dest)
}
