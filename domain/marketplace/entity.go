package marketplace

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// FetchCap bounds how many listings one marketplace fetch returns
const FetchCap = 50

// Agent represents an AI employee listing row
type Agent struct {
	bun.BaseModel `bun:"table:agent_listings,alias:al"`

	ID           string    `bun:"id,pk,type:uuid"`
	Slug         string    `bun:"slug"`
	Name         string    `bun:"name"`
	Headline     string    `bun:"headline"`
	Description  string    `bun:"description"`
	Category     string    `bun:"category"`
	Skills       []string  `bun:"skills,array"`
	PriceMonthly float64   `bun:"price_monthly"`
	Rating       float64   `bun:"rating"`
	Hires        int       `bun:"hires"`
	Views        int       `bun:"views"`
	Likes        int       `bun:"likes"`
	AvatarURL    string    `bun:"avatar_url"`
	IsActive     bool      `bun:"is_active"`
	CreatedAt    time.Time `bun:"created_at"`
}

// AgentDTO is the marketplace response shape
type AgentDTO struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Headline     string    `json:"headline"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Skills       []string  `json:"skills"`
	PriceMonthly float64   `json:"priceMonthly"`
	Rating       float64   `json:"rating"`
	Hires        int       `json:"hires"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToDTO maps a row into the marketplace shape with defaulted fields
func (a *Agent) ToDTO() AgentDTO {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	category := a.Category
	if category == "" {
		category = "general"
	}
	return AgentDTO{
		ID:           a.ID,
		Slug:         a.Slug,
		Name:         a.Name,
		Headline:     a.Headline,
		Description:  a.Description,
		Category:     category,
		Skills:       skills,
		PriceMonthly: a.PriceMonthly,
		Rating:       a.Rating,
		Hires:        a.Hires,
		AvatarURL:    a.AvatarURL,
		CreatedAt:    a.CreatedAt,
	}
}

// Record adapts the DTO to the shared filter/sort pipeline. Skills act
// as the searchable tag list, and hires stand in for views so the
// "trending" sort surfaces the most-hired agents.
func (d AgentDTO) Record() listing.Record {
	return listing.Record{
		ID:          d.ID,
		Title:       d.Name,
		Description: d.Headline + " " + d.Description,
		Category:    d.Category,
		Tags:        d.Skills,
		Views:       d.Hires,
		Likes:       int(d.Rating * 100),
		Price:       d.PriceMonthly,
		CreatedAt:   d.CreatedAt,
	}
}
