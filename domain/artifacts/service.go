package artifacts

import (
	"context"
	"log/slog"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// store is the persistence surface the service needs
type store interface {
	ListPublic(ctx context.Context, category string, sort listing.SortKey, limit int) ([]Artifact, error)
}

// Service handles business logic for the artifact gallery
type Service struct {
	repo store
	log  *slog.Logger
}

// NewService creates a new artifact service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return newService(repo, log)
}

func newService(repo store, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("artifacts.svc")),
	}
}

// List returns the gallery projection for the given filter state.
//
// Fetch errors yield an explicit empty result so the gallery shows a
// real empty state; it must never be backfilled with demo content.
func (s *Service) List(ctx context.Context, f listing.FilterState) []ArtifactDTO {
	rows, err := s.repo.ListPublic(ctx, f.Category, f.Sort, FetchCap)
	if err != nil {
		s.log.Warn("artifact fetch failed, returning empty gallery", logger.Error(err))
		return []ArtifactDTO{}
	}

	dtos := make([]ArtifactDTO, len(rows))
	records := make([]listing.Record, len(rows))
	byID := make(map[string]ArtifactDTO, len(rows))
	for i := range rows {
		dtos[i] = rows[i].ToDTO()
		records[i] = dtos[i].Record()
		byID[dtos[i].ID] = dtos[i]
	}

	// Category and sort were applied server-side; the text query runs
	// through the shared pipeline over the capped fetch.
	projected := listing.Project(records, listing.FilterState{Query: f.Query})

	out := make([]ArtifactDTO, len(projected))
	for i, rec := range projected {
		out[i] = byID[rec.ID]
	}
	return out
}
