package blog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
)

type fakeStore struct {
	posts []Post
	err   error
}

func (f *fakeStore) ListPublished(ctx context.Context, limit int) ([]Post, error) {
	return f.posts, f.err
}

func (f *fakeStore) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, apperror.NewNotFound("post", slug)
}

func testService(store store) *Service {
	return newService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestList_ExcludesContent(t *testing.T) {
	svc := testService(&fakeStore{posts: []Post{
		{ID: "1", Slug: "launch", Title: "Launch", Content: "full body", Author: &Author{Name: "Jane"}},
	}})

	posts := svc.List(context.Background())
	require.Len(t, posts, 1)
	assert.Empty(t, posts[0].Content, "index listing must not carry full content")
	assert.Equal(t, "Jane", posts[0].Author)
}

func TestList_EmptyOnError(t *testing.T) {
	svc := testService(&fakeStore{err: apperror.ErrDatabase})

	posts := svc.List(context.Background())
	require.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGet_IncludesContent(t *testing.T) {
	svc := testService(&fakeStore{posts: []Post{
		{ID: "1", Slug: "launch", Title: "Launch", Content: "full body"},
	}})

	post, err := svc.Get(context.Background(), "launch")
	require.NoError(t, err)
	assert.Equal(t, "full body", post.Content)
}

func TestToDTO_MissingJoins(t *testing.T) {
	p := Post{ID: "1", Slug: "x", Title: "X"}

	dto := p.ToDTO(false)
	assert.Empty(t, dto.Author)
	assert.Equal(t, "general", dto.Category, "missing category join defaults")
}
