package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPadrao(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "America/Cuiaba", cfg.App.Timezone)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 25*1024*1024, cfg.Upload.MaxBytes)
	assert.Equal(t, "dev-secret-change-me", cfg.JWT.Secret)
	assert.False(t, cfg.AdminSeed.Enabled())
}

func TestLoad_EnvSobrescrevePadrao(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("ADMIN_SEED_EMAIL", "admin@relampago.com")
	t.Setenv("ADMIN_SEED_PASSWORD", "segredo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.InDelta(t, 2.5, cfg.RateLimit.PerSecond, 0.0001)
	assert.True(t, cfg.AdminSeed.Enabled())
}

func TestLoad_ProducaoExigeSegredo(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN_EscapaSenha(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/w", DBName: "relampago", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fw@db:5432/relampago?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestLoad_ProxyConfiavel(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PROXY_HEADER", "X-Forwarded-For")
	t.Setenv("HTTP_TRUSTED_PROXIES", " 10.0.0.1, ,172.16.0.0/12,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "X-Forwarded-For", cfg.HTTP.ProxyHeader)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.HTTP.TrustedProxies)
}

func TestLoad_SemProxyPorPadrao(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.HTTP.ProxyHeader)
	assert.Empty(t, cfg.HTTP.TrustedProxies)
}
