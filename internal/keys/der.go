package keys

import (
	"errors"
	"fmt"
)

// Minimal BER/DER tag-length-value walker, used only to lift the
// SubjectPublicKeyInfo out of a certificate. This is deliberately not a
// general ASN.1 parser: it understands just enough structure to descend
// into TBSCertificate, and unlike crypto/x509 it tolerates BER long-form
// and indefinite-form lengths.

var errTruncated = errors.New("keys: truncated DER element")

// element is one TLV record. full covers tag+length+value so an extracted
// element can be handed to another parser verbatim.
type element struct {
	tag   byte
	value []byte
	full  []byte
}

// readElement parses the element starting at buf[off] and returns it along
// with the offset of the next sibling. Every advance is bounds-checked; an
// indefinite-length scan is capped by the remaining buffer.
func readElement(buf []byte, off int) (element, int, error) {
	start := off
	if off+2 > len(buf) {
		return element{}, 0, errTruncated
	}
	tag := buf[off]
	off++

	lenByte := buf[off]
	off++

	var length int
	switch {
	case lenByte < 0x80:
		// short form
		length = int(lenByte)

	case lenByte == 0x80:
		// indefinite form: value runs until a 0x00 0x00 terminator
		for end := off; ; end++ {
			if end+2 > len(buf) {
				return element{}, 0, fmt.Errorf("keys: unterminated indefinite-length element")
			}
			if buf[end] == 0 && buf[end+1] == 0 {
				return element{
					tag:   tag,
					value: buf[off:end],
					full:  buf[start : end+2],
				}, end + 2, nil
			}
		}

	default:
		// long form: low bits give the count of length bytes
		n := int(lenByte & 0x7f)
		if n > 4 || off+n > len(buf) {
			return element{}, 0, fmt.Errorf("keys: unsupported DER length encoding")
		}
		for i := 0; i < n; i++ {
			length = length<<8 | int(buf[off+i])
		}
		off += n
	}

	if length < 0 || off+length > len(buf) {
		return element{}, 0, errTruncated
	}
	return element{
		tag:   tag,
		value: buf[off : off+length],
		full:  buf[start : off+length],
	}, off + length, nil
}

// certificatePublicKey extracts the SubjectPublicKeyInfo DER from an X.509
// certificate. Within TBSCertificate the SPKI sits at child index 5, or 6
// when the optional explicit version tag (0xa0) leads the sequence.
func certificatePublicKey(der []byte) ([]byte, error) {
	cert, _, err := readElement(der, 0)
	if err != nil {
		return nil, err
	}
	if cert.tag != 0x30 {
		return nil, fmt.Errorf("keys: certificate is not a SEQUENCE")
	}

	tbs, _, err := readElement(cert.value, 0)
	if err != nil {
		return nil, err
	}
	if tbs.tag != 0x30 {
		return nil, fmt.Errorf("keys: TBSCertificate is not a SEQUENCE")
	}

	want := 5
	idx := 0
	for off := 0; off < len(tbs.value); idx++ {
		el, next, err := readElement(tbs.value, off)
		if err != nil {
			return nil, err
		}
		if idx == 0 && el.tag == 0xa0 {
			want = 6
		}
		if idx == want {
			return el.full, nil
		}
		off = next
	}
	return nil, fmt.Errorf("keys: certificate has no SubjectPublicKeyInfo")
}
