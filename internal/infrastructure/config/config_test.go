package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, StorageDynamoDB, cfg.Storage.Driver)
	assert.Equal(t, "oficina_pro_db_v1", cfg.Storage.Key)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/oficina-test.db")
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("JWT_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/oficina-test.db", cfg.SQLite.Path)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "driver", key: "STORAGE_DRIVER", val: "cassandra"},
		{name: "timezone", key: "TIMEZONE", val: "Mars/Olympus"},
		{name: "ttl", key: "JWT_TTL", val: "0s"},
		{name: "gin mode", key: "GIN_MODE", val: "verbose"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
