package pricing

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Repository handles database operations for pricing plans
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new pricing repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("pricing.repo")),
	}
}

// ListPlans returns all plans ordered for display
func (r *Repository) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := r.db.NewSelect().
		Model(&plans).
		Order("sort_order ASC").
		Scan(ctx)
	if err != nil {
		r.log.Error("failed to list pricing plans", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return plans, nil
}
