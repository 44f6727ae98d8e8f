// Package main provides the entry point for the AGI Agent Automation
// marketing site and content API.
package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/artifacts"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/blog"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/checkout"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/contact"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/health"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/help"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/marketplace"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/pages"
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/pricing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/config"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/database"
	"github.com/siddharthanagula3/agiagentautomation-sub009/internal/server"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/auth"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Load .env if present (for local development). Load() won't
	// overwrite vars already set in the environment.
	_ = godotenv.Load()

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("failed to access static files:", err)
	}

	fx.New(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		server.Module,

		// Auth module
		auth.Module,

		// Static assets
		fx.Invoke(func(e *echo.Echo) {
			e.StaticFS("/static", staticSub)
		}),

		// Domain modules
		health.Module,
		pricing.Module,
		blog.Module,
		artifacts.Module,
		marketplace.Module,
		help.Module,
		contact.Module,
		checkout.Module,
		pages.Module,
	).Run()
}
