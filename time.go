package jwt

import (
	"fmt"
	"time"
)

// Clock supplies the current time for iat stamping and claim validation.
// A nil Clock in any options struct means time.Now. Tests inject a fixed
// Clock for deterministic temporal behavior.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// NumericDate is a JSON numeric date as specified in RFC 7519: seconds since
// the Unix epoch. Struct payloads use it for exp/nbf/iat fields so they
// serialize the way the wire format requires.
type NumericDate struct {
	time.Time
}

// NewNumericDate creates a NumericDate from a time.Time.
func NewNumericDate(t time.Time) NumericDate {
	return NumericDate{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (d NumericDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return fmt.Appendf(nil, "%d", d.Unix()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *NumericDate) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(b) == 0 || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	if s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	var unix int64
	if _, err := fmt.Sscanf(s, "%d", &unix); err != nil {
		return fmt.Errorf("jwt: invalid numeric date %q", s)
	}
	if unix < 0 || unix > 253402300799 {
		return fmt.Errorf("jwt: numeric date %d out of range", unix)
	}
	d.Time = time.Unix(unix, 0).UTC()
	return nil
}
