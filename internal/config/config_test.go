package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerAddress)
	assert.Equal(t, "local", cfg.Environment)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "agi_session", cfg.Auth.SessionCookie)
	assert.Equal(t, float64(3), cfg.Contact.RatePerMinute)
	assert.Equal(t, 5, cfg.Contact.RateBurst)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "agiagent",
		Password: "pw",
		Database: "agiagent",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://agiagent:pw@localhost:5432/agiagent?sslmode=disable", d.DSN())
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "99999")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestValidate_CheckoutPair(t *testing.T) {
	t.Setenv("CHECKOUT_PROVIDER_URL", "https://pay.example.com")
	// API key deliberately unset

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestCheckoutConfig_IsConfigured(t *testing.T) {
	t.Setenv("CHECKOUT_PROVIDER_URL", "https://pay.example.com")
	t.Setenv("CHECKOUT_API_KEY", "sk_test_123")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Checkout.IsConfigured())
}

func TestEmailConfig_IsConfigured(t *testing.T) {
	e := EmailConfig{MailgunDomain: "mg.example.com", MailgunAPIKey: "key"}
	assert.True(t, e.IsConfigured())

	e.MailgunAPIKey = ""
	assert.False(t, e.IsConfigured())
}

func TestAuthConfig_Enabled(t *testing.T) {
	a := AuthConfig{}
	assert.False(t, a.Enabled())

	a.SessionSecret = "secret"
	assert.True(t, a.Enabled())
}
