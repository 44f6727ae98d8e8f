package blog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// Repository handles database operations for blog posts
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new blog repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("blog.repo")),
	}
}

// ListPublished returns published posts, newest first, with author and
// category joined.
func (r *Repository) ListPublished(ctx context.Context, limit int) ([]Post, error) {
	var posts []Post
	err := r.db.NewSelect().
		Model(&posts).
		Relation("Author").
		Relation("Category").
		Where("bp.published = true").
		Order("bp.published_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		r.log.Error("failed to list blog posts", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return posts, nil
}

// GetBySlug returns one published post with its content
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	var post Post
	err := r.db.NewSelect().
		Model(&post).
		Relation("Author").
		Relation("Category").
		Where("bp.slug = ?", slug).
		Where("bp.published = true").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NewNotFound("post", slug)
		}
		r.log.Error("failed to get blog post", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return &post, nil
}
