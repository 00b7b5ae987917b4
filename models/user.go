package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUserNotObject is returned when a user profile payload is not a JSON
// object.
var ErrUserNotObject = errors.New("user profile is not a JSON object")

// User is the profile of the authenticated user as the backend returned it.
//
// Only the identifying and display fields are typed. The complete JSON object
// received from the backend is retained and is what gets persisted and
// re-emitted by MarshalJSON, so fields unknown to the client survive a
// restart unchanged.
type User struct {
	// ID is the backend identifier of the user.
	ID ID `json:"id,omitempty"`

	// Name is the display name.
	Name string `json:"name,omitempty"`

	// Email is the login e-mail.
	Email string `json:"email,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON implements [json.Unmarshaler]. The payload must be a JSON
// object; typed fields are picked best-effort so that a profile with an
// unexpected field type is still accepted.
func (u *User) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrUserNotObject, err)
	}
	if fields == nil {
		return ErrUserNotObject
	}

	*u = User{}
	if v, ok := fields["id"]; ok {
		_ = json.Unmarshal(v, &u.ID)
	}
	if v, ok := fields["name"]; ok {
		_ = json.Unmarshal(v, &u.Name)
	}
	if v, ok := fields["email"]; ok {
		_ = json.Unmarshal(v, &u.Email)
	}

	if len(fields) > 0 {
		var compact bytes.Buffer
		if err := json.Compact(&compact, b); err != nil {
			return fmt.Errorf("compact user profile: %w", err)
		}
		u.raw = compact.Bytes()
	}

	return nil
}

// MarshalJSON implements [json.Marshaler]. A profile decoded from the backend
// is written back verbatim; a profile built in code is written from its typed
// fields.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return u.raw, nil
	}

	type plain struct {
		ID    ID     `json:"id,omitempty"`
		Name  string `json:"name,omitempty"`
		Email string `json:"email,omitempty"`
	}
	return json.Marshal(plain{ID: u.ID, Name: u.Name, Email: u.Email})
}

// IsEmpty reports whether the profile carries no data at all.
func (u User) IsEmpty() bool {
	return len(u.raw) == 0 && u.ID.IsZero() && u.Name == "" && u.Email == ""
}

// DisplayName returns the best human-readable label for the user.
func (u User) DisplayName() string {
	switch {
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	default:
		return u.ID.String()
	}
}

// RegisterRequest is the payload of the sign-up form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// ConfirmPassword is checked on the client and never sent.
	ConfirmPassword string `json:"-"`
}

// Credentials is the payload of the credential exchange.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
