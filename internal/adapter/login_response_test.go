package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fin-tracker/models"
)

func TestExtractLoginResult_NestedUser(t *testing.T) {
	got, err := ExtractLoginResult([]byte(`{"token":"t","user":{"id":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "t", got.Token)

	raw, err := json.Marshal(got.User)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(raw))
}

func TestExtractLoginResult_AccessTokenWholeBodyAsUser(t *testing.T) {
	got, err := ExtractLoginResult([]byte(`{"access_token":"t2","id":1}`))
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, models.ID("1"), got.User.ID)

	raw, err := json.Marshal(got.User)
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_token":"t2","id":1}`, string(raw))
}

func TestExtractLoginResult_TokenPreferredOverAccessToken(t *testing.T) {
	got, err := ExtractLoginResult([]byte(`{"token":"a","access_token":"b","user":{"id":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "a", got.Token)
}

func TestExtractLoginResult_EmptyTokenFallsBackToAccessToken(t *testing.T) {
	got, err := ExtractLoginResult([]byte(`{"token":"","access_token":"b","user":{"id":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "b", got.Token)
}

func TestExtractLoginResult_NullUserUsesBody(t *testing.T) {
	got, err := ExtractLoginResult([]byte(`{"token":"t","user":null,"id":3}`))
	require.NoError(t, err)
	assert.Equal(t, models.ID("3"), got.User.ID)
}

func TestExtractLoginResult_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "null", body: `null`},
		{name: "array", body: `[{"token":"t"}]`},
		{name: "not json", body: `token=t`},
		{name: "numeric token", body: `{"token":42}`},
		{name: "user not an object", body: `{"token":"t","user":"ann"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractLoginResult([]byte(tt.body))
			assert.ErrorIs(t, err, ErrInvalidCredentialResponse)
		})
	}
}
