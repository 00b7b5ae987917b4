package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_JSON(t *testing.T) {
	var ids struct {
		Num  ID `json:"num"`
		Str  ID `json:"str"`
		Null ID `json:"null"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"num": 42, "str": "abc", "null": null}`), &ids))
	assert.Equal(t, ID("42"), ids.Num)
	assert.Equal(t, ID("abc"), ids.Str)
	assert.True(t, ids.Null.IsZero())

	b, err := json.Marshal(ids)
	require.NoError(t, err)
	assert.JSONEq(t, `{"num": 42, "str": "abc", "null": null}`, string(b))
}

func TestUser_KeepsUnknownFields(t *testing.T) {
	in := `{"id": 7, "name": "Ann", "theme": "dark"}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(in), &u))
	assert.Equal(t, ID("7"), u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.False(t, u.IsEmpty())

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(b))
}

func TestUser_OddFieldTypesAreTolerated(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id": "u1", "name": 5}`), &u))
	assert.Equal(t, ID("u1"), u.ID)
	assert.Empty(t, u.Name)
}

func TestUser_RejectsNonObjects(t *testing.T) {
	for _, in := range []string{`"ann"`, `42`, `null`, `[1]`} {
		var u User
		assert.ErrorIs(t, json.Unmarshal([]byte(in), &u), ErrUserNotObject, in)
	}
}

func TestUser_EmptyObject(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{}`), &u))
	assert.True(t, u.IsEmpty())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ann", User{Name: "Ann", Email: "a@x.io"}.DisplayName())
	assert.Equal(t, "a@x.io", User{ID: "1", Email: "a@x.io"}.DisplayName())
	assert.Equal(t, "1", User{ID: "1"}.DisplayName())
}

func TestRegisterRequest_ConfirmationNotSent(t *testing.T) {
	b, err := json.Marshal(RegisterRequest{Name: "Ann", Email: "a@x.io", Password: "secret", ConfirmPassword: "secret"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Ann", "email": "a@x.io", "password": "secret"}`, string(b))
}

func TestAppBuildInfo_Blanks(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", " ", "")
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
