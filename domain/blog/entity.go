package blog

import (
	"time"

	"github.com/uptrace/bun"
)

// Author represents a blog author row
type Author struct {
	bun.BaseModel `bun:"table:blog_authors,alias:ba"`

	ID        string `bun:"id,pk,type:uuid"`
	Name      string `bun:"name"`
	Role      string `bun:"role"`
	AvatarURL string `bun:"avatar_url"`
}

// Category represents a blog category row
type Category struct {
	bun.BaseModel `bun:"table:blog_categories,alias:bc"`

	ID   string `bun:"id,pk,type:uuid"`
	Slug string `bun:"slug"`
	Name string `bun:"name"`
}

// Post represents a blog post row with its joined author and category
type Post struct {
	bun.BaseModel `bun:"table:blog_posts,alias:bp"`

	ID          string     `bun:"id,pk,type:uuid"`
	Slug        string     `bun:"slug"`
	Title       string     `bun:"title"`
	Excerpt     string     `bun:"excerpt"`
	Content     string     `bun:"content"`
	AuthorID    *string    `bun:"author_id,type:uuid"`
	CategoryID  *string    `bun:"category_id,type:uuid"`
	Published   bool       `bun:"published"`
	PublishedAt *time.Time `bun:"published_at"`
	Views       int        `bun:"views"`
	Likes       int        `bun:"likes"`
	CreatedAt   time.Time  `bun:"created_at"`

	Author   *Author   `bun:"rel:belongs-to,join:author_id=id"`
	Category *Category `bun:"rel:belongs-to,join:category_id=id"`
}

// PostDTO is the response shape for a blog post
type PostDTO struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	Author      string     `json:"author"`
	AuthorRole  string     `json:"authorRole,omitempty"`
	Category    string     `json:"category"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Views       int        `json:"views"`
	Likes       int        `json:"likes"`
}

// ToDTO converts a post to its response shape. Posts with missing
// joins keep rendering with neutral defaults.
func (p *Post) ToDTO(includeContent bool) PostDTO {
	dto := PostDTO{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Category:    "general",
		PublishedAt: p.PublishedAt,
		Views:       p.Views,
		Likes:       p.Likes,
	}
	if includeContent {
		dto.Content = p.Content
	}
	if p.Author != nil {
		dto.Author = p.Author.Name
		dto.AuthorRole = p.Author.Role
	}
	if p.Category != nil {
		dto.Category = p.Category.Name
	}
	return dto
}
