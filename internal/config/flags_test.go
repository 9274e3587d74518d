package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerFlags(t *testing.T) {
	cfg, err := parseServerFlags([]string{
		"-a", "localhost:9090",
		"-d", "postgres://u:p@db/kinkeeper",
		"-token-sign-key", "k",
		"-token-duration", "12h",
		"-request-timeout", "30s",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@db/kinkeeper", cfg.Storage.DB.DSN)
	assert.Equal(t, "k", cfg.Auth.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseClientFlags(t *testing.T) {
	cfg, err := parseClientFlags([]string{
		"-cache", "cache.db",
		"-server", "http://localhost:8080",
		"-flush-interval", "2m",
		"-tombstone-retention", "168h",
	})
	require.NoError(t, err)

	assert.Equal(t, "cache.db", cfg.Cache.Path)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Workers.FlushInterval)
	assert.Equal(t, 168*time.Hour, cfg.Cache.TombstoneRetention)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
