package artifacts

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

// FetchCap bounds how many artifacts one gallery fetch returns
const FetchCap = 50

// Artifact represents a public artifact row
type Artifact struct {
	bun.BaseModel `bun:"table:artifacts,alias:a"`

	ID           string    `bun:"id,pk,type:uuid"`
	Title        string    `bun:"title"`
	Description  string    `bun:"description"`
	Category     string    `bun:"category"`
	ArtifactType string    `bun:"artifact_type"`
	Tags         []string  `bun:"tags,array"`
	AuthorName   string    `bun:"author_name"`
	PreviewURL   string    `bun:"preview_url"`
	Views        int       `bun:"views"`
	Likes        int       `bun:"likes"`
	IsPublic     bool      `bun:"is_public"`
	CreatedAt    time.Time `bun:"created_at"`
}

// ArtifactDTO is the gallery response shape
type ArtifactDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	AuthorName  string    `json:"authorName"`
	PreviewURL  string    `json:"previewUrl,omitempty"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToDTO maps a row into the gallery shape, defaulting absent optional
// fields (missing numerics stay 0, missing tag arrays become empty).
func (a *Artifact) ToDTO() ArtifactDTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	category := a.Category
	if category == "" {
		category = "general"
	}
	return ArtifactDTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    category,
		Type:        a.ArtifactType,
		Tags:        tags,
		AuthorName:  a.AuthorName,
		PreviewURL:  a.PreviewURL,
		Views:       a.Views,
		Likes:       a.Likes,
		CreatedAt:   a.CreatedAt,
	}
}

// Record adapts the DTO to the shared filter/sort pipeline
func (d ArtifactDTO) Record() listing.Record {
	return listing.Record{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Tags:        d.Tags,
		Views:       d.Views,
		Likes:       d.Likes,
		CreatedAt:   d.CreatedAt,
	}
}
