package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CONFIG_FILE", "PORT", "DOC_STORE", "FIREBASE_CREDENTIALS", "FIREBASE_PROJECT_ID",
	"SQLITE_PATH", "CORS_ORIGINS", "YELP_API_KEY", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
}

// clearEnv blanks every key so values from the developer's shell or a .env
// file do not leak into the test. t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, StoreFirestore, cfg.DocStore)
	assert.Equal(t, "serviceAccountKey.json", cfg.FirebaseCredentials)
	assert.Equal(t, "data/reviews.db", cfg.SQLitePath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.YelpAPIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DOC_STORE", "SQLite")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("YELP_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.DocStore)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "key", cfg.YelpAPIKey)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 7000
doc_store: memory
log_level: debug
shutdown_timeout: 10s
cors_origins:
  - https://reviews.example.com
`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, StoreMemory, cfg.DocStore)
	assert.Equal(t, "warn", cfg.LogLevel, "env wins over the file")
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://reviews.example.com"}, cfg.CORSOrigins)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("FIREBASE_PROJECT_ID=from-dotenv\n"), 0o644))
	// godotenv never overrides variables that are already set, even to "".
	require.NoError(t, os.Unsetenv("FIREBASE_PROJECT_ID"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.FirebaseProjectID)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"unknown store", "DOC_STORE", "mongo"},
		{"bad timeout", "SHUTDOWN_TIMEOUT", "soon"},
		{"missing config file", "CONFIG_FILE", "/nonexistent/config.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
