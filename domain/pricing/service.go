package pricing

import (
	"context"
	"log/slog"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/logger"
)

// store is the persistence surface the service needs
type store interface {
	ListPlans(ctx context.Context) ([]Plan, error)
}

// Service handles business logic for pricing plans
type Service struct {
	repo store
	log  *slog.Logger
}

// NewService creates a new pricing service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return newService(repo, log)
}

func newService(repo store, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("pricing.svc")),
	}
}

// ListPlans returns the plans to render on the pricing page.
//
// Unlike the other content domains, pricing falls back to the static
// default plans on a fetch error: the pricing page must never render
// blank, and the defaults mirror the canonical published tiers.
func (s *Service) ListPlans(ctx context.Context) []PlanDTO {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		s.log.Warn("falling back to default plans", logger.Error(err))
		return defaultPlans()
	}
	if len(plans) == 0 {
		return defaultPlans()
	}

	out := make([]PlanDTO, len(plans))
	for i := range plans {
		out[i] = plans[i].ToDTO()
	}
	return out
}

// defaultPlans is the static fallback list for the pricing page
func defaultPlans() []PlanDTO {
	return []PlanDTO{
		{
			Slug:         "starter",
			Name:         "Starter",
			Description:  "One AI employee for a single workflow",
			PriceMonthly: 29,
			PriceYearly:  290,
			Currency:     "USD",
			Features: []string{
				"1 AI employee",
				"500 tasks per month",
				"Email support",
			},
		},
		{
			Slug:         "pro",
			Name:         "Pro",
			Description:  "A small team of AI employees for growing companies",
			PriceMonthly: 99,
			PriceYearly:  990,
			Currency:     "USD",
			Features: []string{
				"5 AI employees",
				"10,000 tasks per month",
				"Custom integrations",
				"Priority support",
			},
			Highlighted: true,
		},
		{
			Slug:         "enterprise",
			Name:         "Enterprise",
			Description:  "Unlimited workforce with dedicated onboarding",
			PriceMonthly: 499,
			PriceYearly:  4990,
			Currency:     "USD",
			Features: []string{
				"Unlimited AI employees",
				"Unlimited tasks",
				"SSO and audit logs",
				"Dedicated success manager",
			},
		},
	}
}
