package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a server-assigned record identifier. The backend sends identifiers
// either as JSON numbers or as JSON strings; both decode into the same value
// so that equality checks between records never depend on the wire form.
type ID string

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a JSON number, a
// JSON string or null (decoded as the zero ID).
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode string id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode numeric id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON implements [json.Marshaler]. Integer identifiers are written
// back as JSON numbers so that the backend receives the same type it issued.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String implements [fmt.Stringer].
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}
