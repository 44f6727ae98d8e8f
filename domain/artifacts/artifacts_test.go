package artifacts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
	"github.com/siddharthanagula3/agiagentautomation-sub009/pkg/apperror"
)

type fakeStore struct {
	rows         []Artifact
	err          error
	gotCategory  string
	gotSort      listing.SortKey
	gotLimit     int
}

func (f *fakeStore) ListPublic(ctx context.Context, category string, sort listing.SortKey, limit int) ([]Artifact, error) {
	f.gotCategory = category
	f.gotSort = sort
	f.gotLimit = limit
	return f.rows, f.err
}

func testService(store store) *Service {
	return newService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestList_EmptyOnFetchError(t *testing.T) {
	svc := testService(&fakeStore{err: apperror.ErrDatabase})

	got := svc.List(context.Background(), listing.FilterState{})

	// An error must surface as an explicit empty gallery, never as
	// substituted demo content.
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_PushesFiltersToStore(t *testing.T) {
	store := &fakeStore{}
	svc := testService(store)

	svc.List(context.Background(), listing.FilterState{
		Category: "dashboards",
		Sort:     listing.SortPopular,
	})

	assert.Equal(t, "dashboards", store.gotCategory)
	assert.Equal(t, listing.SortPopular, store.gotSort)
	assert.Equal(t, FetchCap, store.gotLimit)
}

func TestList_TextQueryFiltersInMemory(t *testing.T) {
	store := &fakeStore{rows: []Artifact{
		{ID: "1", Title: "Quarterly report generator", Category: "reports"},
		{ID: "2", Title: "Lead scraper", Description: "Scrapes leads", Category: "sales"},
		{ID: "3", Title: "Invoice bot", Tags: []string{"reports", "finance"}, Category: "finance"},
	}}
	svc := testService(store)

	got := svc.List(context.Background(), listing.FilterState{Query: "report"})

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID, "tag membership must match the query")
}

func TestToDTO_Defaults(t *testing.T) {
	a := Artifact{ID: "1", Title: "Bare artifact", CreatedAt: time.Now()}

	dto := a.ToDTO()

	assert.Equal(t, []string{}, dto.Tags, "missing tag array defaults to empty")
	assert.Equal(t, "general", dto.Category)
	assert.Zero(t, dto.Views, "missing numerics default to 0")
	assert.Zero(t, dto.Likes)
}
