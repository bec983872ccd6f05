package rfctime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Format string to stringify date-time, in RFC3339 with numeric offset.
const RFC3339DateTimeFormat string = "2006-01-02T15:04:05.999-07:00"

// Format string to parse RFC3339 date-time expression, allowing "Z".
const RFC3339DateTimeFormatZ string = time.RFC3339Nano

// Abbreviated or offset-less forms seen from backends.
//
// Timestamps without offset are interpreted in local time.
const (
	RFC3339DateNano      = "2006-01-02T15:04:05.999999999"
	RFC3339DateNanoSpace = "2006-01-02 15:04:05.999999999"
	RFC3339DateSecZSpace = "2006-01-02 15:04:05Z07:00"
	RFC3339DateMin       = "2006-01-02T15:04"
	RFC3339DateOnly      = "2006-01-02"
)

// date-time in https://www.ietf.org/rfc/rfc3339.txt .
//
// Decoding from JSON is loose: backends built on other stacks often omit the
// time offset (e.g. "2024-05-01T10:00:00.1234567").
type RFC3339 time.Time

func (t RFC3339) Time() time.Time {
	return time.Time(t)
}

func (t RFC3339) Equal(other RFC3339) bool {
	return t.Time().Equal(other.Time())
}

// Equal for optional timestamps. nil equals nil only.
func PEqual(a, b *RFC3339) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// After reports t is later than other.
//
// nil is older than anything.
func After(t, other *RFC3339) bool {
	if t == nil {
		return false
	}
	if other == nil {
		return true
	}
	return t.Time().After(other.Time())
}

func (t RFC3339) String() string {
	return time.Time(t).Format(RFC3339DateTimeFormat)
}

// Parse string as strict RFC3339 date-time.
func ParseRFC3339DateTime(s string) (RFC3339, error) {
	t, err := time.Parse(RFC3339DateTimeFormatZ, s)
	if err != nil {
		return RFC3339{}, err
	}
	return RFC3339(t), nil
}

// Parse string as RFC3339 date-time, also accepting abbreviated forms.
func ParseLooseRFC3339(s string) (RFC3339, error) {
	for _, format := range []string{RFC3339DateTimeFormatZ, RFC3339DateSecZSpace} {
		if t, err := time.Parse(format, s); err == nil {
			return RFC3339(t), nil
		}
	}

	for _, format := range []string{
		RFC3339DateNano, RFC3339DateNanoSpace, RFC3339DateMin, RFC3339DateOnly,
	} {
		if t, err := time.ParseInLocation(format, s, time.Local); err == nil {
			return RFC3339(t), nil
		}
	}

	return RFC3339{}, fmt.Errorf("failed to parse %s as date-time", s)
}

// implement encoding/json.Marshaler
func (t RFC3339) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, t)), nil
}

// implement encoding/json.Unmarshaler
func (t *RFC3339) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ret, err := ParseLooseRFC3339(s)
	if err != nil {
		return err
	}

	*t = ret
	return nil
}
