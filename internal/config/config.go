package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Public base URL used in redirects and email links
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:4002"`

	// Database settings
	Database DatabaseConfig

	// Session authentication
	Auth AuthConfig

	// Email delivery (contact tickets)
	Email EmailConfig

	// Checkout provider
	Checkout CheckoutConfig

	// Contact form rate limiting
	Contact ContactConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host         string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port         int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string        `env:"POSTGRES_USER" envDefault:"agiagent"`
	Password     string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database     string        `env:"POSTGRES_DB" envDefault:"agiagent"`
	SSLMode      string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	QueryDebug   bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// AuthConfig holds session verification settings.
//
// The marketing site only reads identity issued by the main application;
// it never creates sessions itself.
type AuthConfig struct {
	// Shared HMAC secret for session JWT verification
	SessionSecret string `env:"SESSION_JWT_SECRET"`

	// Cookie carrying the session token
	SessionCookie string `env:"SESSION_COOKIE_NAME" envDefault:"agi_session"`

	// URL of the main application dashboard (post-login destination)
	DashboardURL string `env:"DASHBOARD_URL" envDefault:"http://localhost:3000/dashboard"`

	// URL of the registration page for signed-out visitors
	RegisterURL string `env:"REGISTER_URL" envDefault:"http://localhost:3000/register"`
}

// Enabled reports whether session verification is configured
func (a *AuthConfig) Enabled() bool {
	return a.SessionSecret != ""
}

// EmailConfig holds Mailgun delivery settings for contact tickets
type EmailConfig struct {
	Enabled       bool   `env:"EMAIL_ENABLED" envDefault:"true"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@agiagentautomation.com"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"AGI Agent Automation"`
	SalesEmail    string `env:"SALES_EMAIL" envDefault:"sales@agiagentautomation.com"`
}

// IsConfigured returns true if Mailgun credentials are set
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// CheckoutConfig holds the external checkout provider settings
type CheckoutConfig struct {
	// Base URL of the checkout provider API
	ProviderURL string `env:"CHECKOUT_PROVIDER_URL"`

	// Secret API key for the checkout provider
	APIKey string `env:"CHECKOUT_API_KEY"`

	// Where the provider sends the user after checkout completes
	SuccessURL string `env:"CHECKOUT_SUCCESS_URL" envDefault:"http://localhost:3000/dashboard?checkout=success"`
	CancelURL  string `env:"CHECKOUT_CANCEL_URL" envDefault:"http://localhost:4002/pricing"`

	// Request timeout for provider calls
	Timeout time.Duration `env:"CHECKOUT_TIMEOUT" envDefault:"15s"`
}

// IsConfigured returns true if the checkout provider is usable
func (c *CheckoutConfig) IsConfigured() bool {
	return c.ProviderURL != "" && c.APIKey != ""
}

// ContactConfig holds contact form throttling settings
type ContactConfig struct {
	// Sustained submissions per minute allowed per client IP
	RatePerMinute float64 `env:"CONTACT_RATE_PER_MINUTE" envDefault:"3"`

	// Burst allowance per client IP
	RateBurst int `env:"CONTACT_RATE_BURST" envDefault:"5"`
}

// NewConfig parses configuration from the environment
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field configuration constraints
func (c *Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.ServerPort)
	}

	if c.Email.Enabled && c.Email.IsConfigured() && c.Email.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}

	// One of the pair set without the other is a deployment mistake,
	// not a deliberately disabled provider.
	if (c.Checkout.ProviderURL == "") != (c.Checkout.APIKey == "") {
		return fmt.Errorf("CHECKOUT_PROVIDER_URL and CHECKOUT_API_KEY must be set together")
	}

	return nil
}

// IsProduction returns true outside local/dev environments
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
