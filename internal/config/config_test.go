package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 20, cfg.DBMaxConns)
	assert.Equal(t, 2, cfg.DBMinConns)
	assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	assert.Equal(t, 5, cfg.SerializationMaxRetries)
	assert.False(t, cfg.ForceUnequipOnDelete)
	assert.Equal(t, "configs/items/items.yaml", cfg.CatalogFile)
	assert.Equal(t, 30*24*time.Hour, cfg.EventLogRetention)
	assert.Equal(t, time.Hour, cfg.EventLogCleanupInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
	t.Setenv("FORCE_UNEQUIP_ON_DELETE", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	assert.True(t, cfg.ForceUnequipOnDelete)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"missing secret", map[string]string{}, "JWTSecret"},
		{"short secret", map[string]string{"JWT_SECRET": "short"}, "JWTSecret"},
		{"bad port", map[string]string{"JWT_SECRET": testSecret, "PORT": "abc"}, ErrMsgParseEnv},
		{"port out of range", map[string]string{"JWT_SECRET": testSecret, "PORT": "70000"}, "Port"},
		{"bad log format", map[string]string{"JWT_SECRET": testSecret, "LOG_FORMAT": "xml"}, "LogFormat"},
		{"cleanup too frequent", map[string]string{"JWT_SECRET": testSecret, "EVENT_LOG_CLEANUP_INTERVAL": "5s"}, "EventLogCleanupInterval"},
		{"otel without endpoint", map[string]string{"JWT_SECRET": testSecret, "OTEL_ENABLED": "true"}, ErrMsgOTelNeedsEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "vespr",
		DBPassword: "p@ss word",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "game",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://vespr:p%40ss%20word@db:5433/game?sslmode=disable", cfg.GetDBConnString())
}

func TestWarnings(t *testing.T) {
	cfg := &Config{DBPassword: ExampleDBPassword, JWTSecret: ExampleJWTSecret, ForceUnequipOnDelete: true}
	assert.Len(t, Warnings(cfg), 3)

	assert.Empty(t, Warnings(&Config{DBPassword: "x", JWTSecret: testSecret}))
}
