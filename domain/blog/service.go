package blog

import (
	"context"
	"log/slog"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// store is the persistence surface the service needs
type store interface {
	ListPublished(ctx context.Context, limit int) ([]Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
}

// Service handles business logic for the blog
type Service struct {
	repo store
	log  *slog.Logger
}

// NewService creates a new blog service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return newService(repo, log)
}

func newService(repo store, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("blog.svc")),
	}
}

// List returns published posts for the blog index. Fetch errors yield
// an explicit empty result.
func (s *Service) List(ctx context.Context) []PostDTO {
	posts, err := s.repo.ListPublished(ctx, 50)
	if err != nil {
		s.log.Warn("blog fetch failed, returning empty list", logger.Error(err))
		return []PostDTO{}
	}

	out := make([]PostDTO, len(posts))
	for i := range posts {
		out[i] = posts[i].ToDTO(false)
	}
	return out
}

// Get returns one published post with content
func (s *Service) Get(ctx context.Context, slug string) (*PostDTO, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	dto := post.ToDTO(true)
	return &dto, nil
}
