package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Repository handles database operations for agent listings
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new marketplace repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("marketplace.repo")),
	}
}

// ListActive returns active agent listings in fetch order. The
// marketplace backend has no server-side filtering, so the full
// (capped) collection is fetched and projected in memory.
func (r *Repository) ListActive(ctx context.Context, limit int) ([]Agent, error) {
	var agents []Agent
	err := r.db.NewSelect().
		Model(&agents).
		Where("is_active = true").
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		r.log.Error("failed to list agents", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return agents, nil
}

// GetBySlug returns one active agent listing
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Agent, error) {
	var agent Agent
	err := r.db.NewSelect().
		Model(&agent).
		Where("slug = ?", slug).
		Where("is_active = true").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("agent", slug)
		}
		r.log.Error("failed to get agent by slug", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return &agent, nil
}
