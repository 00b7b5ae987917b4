package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {"log_file": "client.log", "page_size": 20},
		"storage": {"db": {"dsn": "tokens.db"}},
		"adapter": {"http_address": "http://localhost:3000", "request_timeout": "10s"},
		"server": {
			"http_address": "localhost:3000",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"request_timeout": "30s"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.Equal(t, "tokens.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Server.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Server.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "forever"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"token_duration": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.TokenDuration)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
