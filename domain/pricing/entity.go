package pricing

import (
	"time"

	"github.com/uptrace/bun"
)

// Plan represents a pricing plan row
type Plan struct {
	bun.BaseModel `bun:"table:pricing_plans,alias:pp"`

	ID           string    `bun:"id,pk,type:uuid"`
	Slug         string    `bun:"slug"`
	Name         string    `bun:"name"`
	Description  string    `bun:"description"`
	PriceMonthly float64   `bun:"price_monthly"`
	PriceYearly  float64   `bun:"price_yearly"`
	Currency     string    `bun:"currency"`
	Features     []string  `bun:"features,array"`
	Highlighted  bool      `bun:"highlighted"`
	SortOrder    int       `bun:"sort_order"`
	CreatedAt    time.Time `bun:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at"`
}

// PlanDTO is the response shape for a pricing plan
type PlanDTO struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceMonthly float64  `json:"priceMonthly"`
	PriceYearly  float64  `json:"priceYearly"`
	Currency     string   `json:"currency"`
	Features     []string `json:"features"`
	Highlighted  bool     `json:"highlighted"`
}

// ToDTO converts a Plan entity to its response shape, defaulting
// absent optional fields so consumers never handle nil.
func (p *Plan) ToDTO() PlanDTO {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	return PlanDTO{
		Slug:         p.Slug,
		Name:         p.Name,
		Description:  p.Description,
		PriceMonthly: p.PriceMonthly,
		PriceYearly:  p.PriceYearly,
		Currency:     currency,
		Features:     features,
		Highlighted:  p.Highlighted,
	}
}
