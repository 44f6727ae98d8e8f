package help

import (
	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// Service handles help center search
type Service struct {
	articles []Article
}

// NewService creates a help service over the published articles
func NewService() *Service {
	return &Service{articles: Articles()}
}

// Search returns articles matching the filter state, preserving the
// curated display order for ties and unsorted queries.
func (s *Service) Search(f listing.FilterState) []Article {
	records := make([]listing.Record, len(s.articles))
	byID := make(map[string]Article, len(s.articles))
	for i, a := range s.articles {
		records[i] = a.Record()
		byID[a.ID] = a
	}

	projected := listing.Project(records, f)

	out := make([]Article, len(projected))
	for i, rec := range projected {
		out[i] = byID[rec.ID]
	}
	return out
}

// Categories returns the distinct article categories in display order
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range s.articles {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}
