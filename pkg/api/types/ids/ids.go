package ids

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a resource (restaurant, menu item, order, user) on the backend.
//
// Backends send identifiers either as JSON numbers or as JSON strings.
// ID keeps both in textual form. When marshalled, an ID in canonical integer
// form (no sign, no leading zeros, fits in int64) is written as a JSON number,
// so the string "7" and the number 7 are not told apart on the wire.
// Any other ID, like "007" or "-1", is written as a JSON string as it is.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

// Numeric returns the ID as int64 if it is an integer ID.
func (id ID) Numeric() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// implement encoding/json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Numeric(); ok && 0 <= n && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// implement encoding/json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id should be a string or a number: %s", string(b))
	}
	*id = ID(n.String())
	return nil
}
