package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseServerJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {"token_sign_key": "jk", "token_duration": "6h"},
		"storage": {"db": {"dsn": "postgres://json"}},
		"server": {"http_address": "localhost:7000", "request_timeout": "45s"}
	}`)

	cfg, err := parseServerJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "jk", cfg.Auth.TokenSignKey)
	assert.Equal(t, 6*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseClientJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"cache": {"path": "json-cache.db", "tombstone_retention": "240h"},
		"adapter": {"base_url": "http://json", "request_timeout": "20s"},
		"workers": {"flush_interval": "90s"}
	}`)

	cfg, err := parseClientJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-cache.db", cfg.Cache.Path)
	assert.Equal(t, 240*time.Hour, cfg.Cache.TombstoneRetention)
	assert.Equal(t, "http://json", cfg.Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.Workers.FlushInterval)
}

func TestParseServerJSON_FileMissing(t *testing.T) {
	_, err := parseServerJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"nope"`)))
}
