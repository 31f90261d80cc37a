package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64URLRoundTrip(t *testing.T) {
	// Lengths 0..8 cover every padding case standard base64 would produce.
	for size := 0; size <= 8; size++ {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte(i*37 + 251) // exercise the high byte range too
		}

		encoded := Base64URLEncode(buf)
		assert.NotContains(t, encoded, "=", "size %d", size)
		assert.NotContains(t, encoded, "+", "size %d", size)
		assert.NotContains(t, encoded, "/", "size %d", size)

		decoded, err := Base64URLDecode(encoded)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, buf, decoded, "size %d", size)
	}
}

func TestBase64URLDecodePadding(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no padding needed", "Zm91cg", "four", false},
		{"one pad char restored", "Zm9vYmE", "fooba", false},
		{"two pad chars restored", "Zm8", "fo", false},
		{"empty", "", "", false},
		{"length mod 4 == 1 is illegal", "Zm9vYQZZZ", "", true},
		{"standard alphabet rejected", "a+b/", "", true},
		{"garbage", "!!!!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Base64URLDecode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	full := make([]byte, 256)
	for i := range full {
		full[i] = byte(i)
	}

	encoded := Base64Encode(full)
	decoded, err := Base64Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, full, decoded)

	_, err = Base64Decode("not base64 at all!")
	assert.Error(t, err)
}

func TestPEMDecode(t *testing.T) {
	const pubPEM = `-----BEGIN PUBLIC KEY-----
MFkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDQgAEJgXBEttiJjpMcoUGb8+Za96P00Tg
VjejLQrW05t6WBpazwy63G6Y62NKnZ9ECocM3aMqnoOdR0YmlETB9TsI6w==
-----END PUBLIC KEY-----`

	der, blockType, err := PEMDecode(pubPEM)
	require.NoError(t, err)
	assert.Equal(t, "PUBLIC KEY", blockType)
	assert.NotEmpty(t, der)
	// SubjectPublicKeyInfo always starts with a SEQUENCE tag.
	assert.Equal(t, byte(0x30), der[0])

	_, _, err = PEMDecode("just some text")
	assert.Error(t, err)

	_, _, err = PEMDecode("")
	assert.Error(t, err)
}
