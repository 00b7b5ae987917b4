package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func isolateEnv(t *testing.T) {
	t.Helper()
	setEnvVars(t, map[string]string{
		"DOTENV_PATH": filepath.Join(t.TempDir(), "none.env"),
	})
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.sources())
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_PrecedenceOrder(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{App: App{PageSize: 20, LogFile: "json.log"}}
	b.env = &StructuredConfig{App: App{PageSize: 30}}
	b.flags = &StructuredConfig{Storage: Storage{DB: DB{DSN: "flags.db"}}}

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.App.PageSize)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
}

func TestBuild_NegativePageSize(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{App: App{PageSize: -1}}

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DSN": "env.db"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "env.db", b.env.Storage.DB.DSN)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_TOKEN_DURATION": "x"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Nil(t, b.env)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_FlagPathWinsOverEnv(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"log_file": "env.log"}})
	flagPath := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"log_file": "flag.log"}})

	b := newConfigBuilder()
	b.env = &StructuredConfig{JSONFilePath: envPath}
	b.flags = &StructuredConfig{JSONFilePath: flagPath}
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "flag.log", b.json.App.LogFile)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "none.json")}
	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetClientConfig / GetDevServerConfig ─────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPageSize, cfg.App.PageSize)
	assert.Equal(t, DefaultChartPath, cfg.App.ChartPath)
}

func TestGetClientConfig_JSONBelowEnvBelowFlags(t *testing.T) {
	isolateEnv(t)
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://json:1", "request_timeout": "7s"},
		"app":     map[string]any{"page_size": 5},
	})
	setEnvVars(t, map[string]string{
		"DOTENV_PATH":     filepath.Join(t.TempDir(), "none.env"),
		"CONFIG":          path,
		"ADAPTER_ADDRESS": "http://env:2",
	})

	cfg, err := GetClientConfig([]string{"-page-size", "15"})
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 15, cfg.App.PageSize)
}

func TestGetClientConfig_MemoryDSNAllowed(t *testing.T) {
	isolateEnv(t)

	cfg, err := GetClientConfig([]string{"-d", MemoryDSN})
	require.NoError(t, err)
	assert.Equal(t, MemoryDSN, cfg.Storage.DB.DSN)
}

func TestGetClientConfig_InvalidAddress(t *testing.T) {
	isolateEnv(t)

	_, err := GetClientConfig([]string{"-a", "localhost:3000"})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetDevServerConfig_RequiresSignKey(t *testing.T) {
	isolateEnv(t)

	_, err := GetDevServerConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidTokenConfigs)
}

func TestGetDevServerConfig_Valid(t *testing.T) {
	isolateEnv(t)

	cfg, err := GetDevServerConfig([]string{"-token-sign-key", "s3cret", "-l", "127.0.0.1:3001"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3001", cfg.HTTPAddress)
	assert.Equal(t, "s3cret", cfg.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.TokenDuration)
}
