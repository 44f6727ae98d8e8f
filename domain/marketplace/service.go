package marketplace

import (
	"context"
	"log/slog"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// store is the persistence surface the service needs
type store interface {
	ListActive(ctx context.Context, limit int) ([]Agent, error)
	GetBySlug(ctx context.Context, slug string) (*Agent, error)
}

// Service handles business logic for the marketplace
type Service struct {
	repo store
	log  *slog.Logger
}

// NewService creates a new marketplace service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return newService(repo, log)
}

func newService(repo store, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("marketplace.svc")),
	}
}

// List returns agent listings projected through the shared pipeline.
// Fetch errors yield an explicit empty result, not placeholder agents.
func (s *Service) List(ctx context.Context, f listing.FilterState) []AgentDTO {
	agents, err := s.repo.ListActive(ctx, FetchCap)
	if err != nil {
		s.log.Warn("agent fetch failed, returning empty marketplace", logger.Error(err))
		return []AgentDTO{}
	}

	dtos := make([]AgentDTO, len(agents))
	records := make([]listing.Record, len(agents))
	byID := make(map[string]AgentDTO, len(agents))
	for i := range agents {
		dtos[i] = agents[i].ToDTO()
		records[i] = dtos[i].Record()
		byID[dtos[i].ID] = dtos[i]
	}

	projected := listing.Project(records, f)

	out := make([]AgentDTO, len(projected))
	for i, rec := range projected {
		out[i] = byID[rec.ID]
	}
	return out
}

// Get returns one agent listing by slug
func (s *Service) Get(ctx context.Context, slug string) (*AgentDTO, error) {
	agent, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	dto := agent.ToDTO()
	return &dto, nil
}
