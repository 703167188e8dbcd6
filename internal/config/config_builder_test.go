package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func builderWith(cfgs ...*StructuredConfig) *configBuilder {
	b := newConfigBuilder()
	for _, cfg := range cfgs {
		b.add("test", cfg, nil)
	}
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_Empty(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_LaterLayerWins(t *testing.T) {
	cfg, err := builderWith(
		&StructuredConfig{App: App{Version: "env", TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{Version: "json"}},
	).build()

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.App.Version)
	// нулевые поля позднего слоя не стирают ранние
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
}

func TestBuild_DefaultsFillOnlyZeroFields(t *testing.T) {
	b := builderWith(&StructuredConfig{Sync: Sync{DebounceDelay: 5 * time.Second}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Sync.DebounceDelay)
	assert.Equal(t, DefaultMinLoadInterval, cfg.Sync.MinLoadInterval)
	assert.Equal(t, DefaultMaxAttempts, cfg.Sync.MaxAttempts)
	assert.Equal(t, DefaultRetryMaxInterval, cfg.Sync.RetryMaxInterval)
}

func TestBuild_Validates(t *testing.T) {
	_, err := builderWith(&StructuredConfig{Sync: Sync{MaxAttempts: -1}}).build()
	assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
}

func TestBuild_SourceErrorsAreJoinedAndNamed(t *testing.T) {
	b := newConfigBuilder()
	b.add("env", nil, assert.AnError)
	b.withFlags([]string{"-a", "nowhere"})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "env: ")
	assert.Contains(t, err.Error(), "flags: ")
	assert.Empty(t, b.layers)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_AddsLayer(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.layers, 1)
	assert.Equal(t, "env", b.layers[0].source)
	assert.Equal(t, "env-issuer", b.layers[0].cfg.App.TokenIssuer)
}

func TestWithFlags_AddsLayer(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "file:study.db"})

	require.NoError(t, b.err)
	require.Len(t, b.layers, 1)
	assert.Equal(t, "file:study.db", b.layers[0].cfg.Storage.DB.DSN)
}

func TestWithJSON(t *testing.T) {
	good := writeTempJSONConfig(t, `{"app": {"token_issuer": "json-issuer"}}`)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not valid json"), 0o600))

	t.Run("no path is a no-op", func(t *testing.T) {
		b := builderWith(&StructuredConfig{}).withJSON()
		assert.NoError(t, b.err)
		assert.Len(t, b.layers, 1)
	})

	t.Run("last path wins", func(t *testing.T) {
		b := builderWith(
			&StructuredConfig{JSONFilePath: bad},
			&StructuredConfig{},
			&StructuredConfig{JSONFilePath: good},
		).withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.layers, 4)
		assert.Equal(t, "json "+good, b.layers[3].source)
		assert.Equal(t, "json-issuer", b.layers[3].cfg.App.TokenIssuer)
	})

	t.Run("missing file", func(t *testing.T) {
		b := builderWith(&StructuredConfig{JSONFilePath: "/nonexistent/config.json"}).withJSON()
		assert.Error(t, b.err)
	})

	t.Run("malformed file", func(t *testing.T) {
		b := builderWith(&StructuredConfig{JSONFilePath: bad}).withJSON()
		assert.Error(t, b.err)
	})

	t.Run("skipped after an earlier failure", func(t *testing.T) {
		b := builderWith(&StructuredConfig{JSONFilePath: good})
		b.err = assert.AnError
		b.withJSON()

		assert.Same(t, assert.AnError, b.err)
		assert.Len(t, b.layers, 1)
	})
}

func TestLoadStructuredConfig_Precedence(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, `{"app": {"token_issuer": "json-issuer"}, "storage": {"db": {"dsn": "file:json.db"}}}`)

	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:env.db")
	t.Setenv("SERVER_ADDRESS", "localhost:7000")

	cfg, err := loadStructuredConfig([]string{"-c", path, "-d", "file:flags.db"})
	require.NoError(t, err)

	// env < flags < json, defaults last
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "file:json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultMaxAttempts, cfg.Sync.MaxAttempts)
}
