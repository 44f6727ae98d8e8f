// Package auth provides read-only access to the visitor's identity.
//
// Sessions are issued by the main application; the marketing site only
// verifies the session token to pre-fill forms and decide whether to
// send a visitor to the dashboard or to registration. It never writes
// to the authentication store.
package auth

import (
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Module provides the auth middleware
var Module = fx.Module("auth",
	fx.Provide(NewMiddleware),
)

// SessionUser is the identity carried by a verified session token
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Plan  string `json:"plan,omitempty"`
}

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Plan  string `json:"plan,omitempty"`
	jwt.RegisteredClaims
}

type contextKey string

const userContextKey contextKey = "session_user"

// GetUser retrieves the session user from the Echo context.
// Returns nil for anonymous visitors.
func GetUser(c echo.Context) *SessionUser {
	if user, ok := c.Get(string(userContextKey)).(*SessionUser); ok {
		return user
	}
	return nil
}

// Middleware verifies session tokens on incoming requests
type Middleware struct {
	cfg *config.Config
	log *slog.Logger
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(cfg *config.Config, log *slog.Logger) *Middleware {
	return &Middleware{
		cfg: cfg,
		log: log.With(logger.Scope("auth")),
	}
}

// OptionalAuth attaches the session user when a valid token is present
// and lets the request through anonymously otherwise.
func (m *Middleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, err := m.authenticate(c); err == nil && user != nil {
				c.Set(string(userContextKey), user)
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests without a valid session token
func (m *Middleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.authenticate(c)
			if err != nil {
				m.log.Warn("authentication failed", logger.Error(err))
				return err
			}
			if user == nil {
				return apperror.ErrUnauthorized
			}
			c.Set(string(userContextKey), user)
			return next(c)
		}
	}
}

// authenticate extracts and verifies the session token.
// Returns (nil, nil) when no token is present at all.
func (m *Middleware) authenticate(c echo.Context) (*SessionUser, error) {
	if !m.cfg.Auth.Enabled() {
		return nil, nil
	}

	token := m.extractToken(c)
	if token == "" {
		return nil, nil
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.cfg.Auth.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperror.ErrInvalidToken.WithInternal(err)
	}

	if claims.Subject == "" {
		return nil, apperror.ErrInvalidToken
	}

	return &SessionUser{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Plan:  claims.Plan,
	}, nil
}

func (m *Middleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cfg.Auth.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	return ""
}
