package artifacts

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Repository handles database operations for artifacts
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new artifact repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("artifacts.repo")),
	}
}

// ListPublic returns up to limit public artifacts. Category and sort
// are pushed down to the database since the gallery backend supports
// server-side filtering; free-text matching stays in the service.
func (r *Repository) ListPublic(ctx context.Context, category string, sort listing.SortKey, limit int) ([]Artifact, error) {
	var rows []Artifact
	q := r.db.NewSelect().
		Model(&rows).
		Where("is_public = true").
		Limit(limit)

	if category != "" && category != listing.CategoryAll {
		q = q.Where("category = ?", category)
	}

	switch sort {
	case listing.SortPopular:
		q = q.Order("likes DESC")
	case listing.SortTrending:
		q = q.Order("views DESC")
	default:
		q = q.Order("created_at DESC")
	}

	if err := q.Scan(ctx); err != nil {
		r.log.Error("failed to list artifacts", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return rows, nil
}
