package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// ExtractLoginResult reads the token and the user profile out of a login
// response body.
//
// The token is taken from "token", or from "access_token" when "token" is
// missing or empty. The profile is the nested "user" object when present;
// otherwise the whole body is taken as the profile, token fields included.
//
// The whole-body fallback is kept for compatibility with backends that
// return a flat user object. It is suspect: it persists the token inside the
// profile. Do not build on it.
func ExtractLoginResult(body []byte) (models.LoginResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return models.LoginResult{}, ErrInvalidCredentialResponse
	}

	token := stringField(fields, "token")
	if token == "" {
		token = stringField(fields, "access_token")
	}
	if token == "" {
		return models.LoginResult{}, ErrInvalidCredentialResponse
	}

	userPayload := json.RawMessage(body)
	if nested, ok := fields["user"]; ok && !isJSONNull(nested) {
		userPayload = nested
	}

	// Stricter than "token present": a user that is not an object cannot be
	// persisted and restored, so it fails the exchange.
	var user models.User
	if err := json.Unmarshal(userPayload, &user); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: user: %w", ErrInvalidCredentialResponse, err)
	}

	return models.LoginResult{Token: token, User: user}, nil
}

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
