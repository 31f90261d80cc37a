package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadElementShortForm(t *testing.T) {
	buf := []byte{0x02, 0x01, 0x05}

	el, next, err := readElement(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x02), el.tag)
	assert.Equal(t, []byte{0x05}, el.value)
	assert.Equal(t, buf, el.full)
	assert.Equal(t, 3, next)
}

func TestReadElementLongForm(t *testing.T) {
	// 0x82 0x01 0x00 declares a 256-byte value in two length bytes.
	value := make([]byte, 256)
	buf := append([]byte{0x04, 0x82, 0x01, 0x00}, value...)

	el, next, err := readElement(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x04), el.tag)
	assert.Len(t, el.value, 256)
	assert.Equal(t, len(buf), next)
}

func TestReadElementIndefiniteForm(t *testing.T) {
	buf := []byte{0x30, 0x80, 0x02, 0x01, 0x05, 0x00, 0x00}

	el, next, err := readElement(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), el.tag)
	assert.Equal(t, []byte{0x02, 0x01, 0x05}, el.value)
	assert.Equal(t, len(buf), next)
}

func TestReadElementMalformed(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"tag only", []byte{0x30}},
		{"length past buffer", []byte{0x30, 0x05, 0x01}},
		{"long form truncated", []byte{0x30, 0x82, 0x01}},
		{"long form absurd width", []byte{0x30, 0x85, 0x01, 0x01, 0x01, 0x01, 0x01}},
		{"indefinite never terminated", []byte{0x30, 0x80, 0x02, 0x01, 0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readElement(tt.buf, 0)
			assert.Error(t, err)
		})
	}
}

func TestCertificatePublicKeyMalformed(t *testing.T) {
	// Not a SEQUENCE at the top level.
	_, err := certificatePublicKey([]byte{0x02, 0x01, 0x05})
	assert.Error(t, err)

	// A SEQUENCE whose TBSCertificate runs out of elements.
	_, err = certificatePublicKey([]byte{0x30, 0x05, 0x30, 0x03, 0x02, 0x01, 0x05})
	assert.Error(t, err)

	_, err = certificatePublicKey(nil)
	assert.Error(t, err)
}
