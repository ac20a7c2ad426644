package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "secrets-test.json")
	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)
	return path
}

func TestLoadSecretsFromFile(t *testing.T) {
	t.Run("file values and defaults", func(t *testing.T) {
		path := writeSecrets(t, `{
			"db": {"host": "db.internal", "user": "sroi", "port": "6543", "password": "pw", "database": "impact", "enableSsl": true},
			"supabase": {"url": "https://abc.supabase.co", "anonKey": "anon", "jwtSecret": "shh"}
		}`)

		secrets, err := LoadSecretsFromFile(path)
		require.NoError(t, err)

		require.Equal(t, "host=db.internal port=6543 user=sroi password=pw dbname=impact", secrets.Db.ToConnectionStr())
		require.Equal(t, "https://abc.supabase.co", secrets.Supabase.Url)
		require.Equal(t, "shh", secrets.Supabase.JwtSecret)
		require.Equal(t, ProbeBackendPostgres, secrets.Probe.Backend)
		require.Equal(t, "test_connection", secrets.Probe.Table)
		require.Equal(t, 5*time.Second, secrets.Probe.Timeout)
		require.Equal(t, 3009, secrets.Api.Port)
		require.Equal(t, "/login", secrets.Api.LoginPath)
		require.Equal(t, "00000000-2025-0001-0001-000000000001", secrets.Report.DefaultID)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeSecrets(t, `{"db": {"host": "db.internal"}, "supabase": {"url": "https://abc.supabase.co"}}`)
		t.Setenv("SROI_DB_HOST", "override.internal")
		t.Setenv("SROI_PROBE_BACKEND", "supabase")

		secrets, err := LoadSecretsFromFile(path)
		require.NoError(t, err)
		require.Equal(t, "override.internal", secrets.Db.Host)
		require.Equal(t, ProbeBackendSupabase, secrets.Probe.Backend)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		secrets, err := LoadSecretsFromFile(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		require.Equal(t, "localhost", secrets.Db.Host)
		require.Equal(t, "host=localhost port=5432 user=postgres password= dbname=postgres sslmode=disable", secrets.Db.ToConnectionStr())
	})

	t.Run("supabase backend needs a url", func(t *testing.T) {
		path := writeSecrets(t, `{"probe": {"backend": "supabase"}}`)
		_, err := LoadSecretsFromFile(path)
		require.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		path := writeSecrets(t, `{"probe": {"backend": "mysql"}}`)
		_, err := LoadSecretsFromFile(path)
		require.ErrorContains(t, err, "unknown probe backend")
	})
}
