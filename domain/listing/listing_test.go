package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []Record {
	return []Record{
		{ID: "1", Title: "Sales Closer", Description: "Automates outbound sales", Category: "sales", Tags: []string{"crm", "email"}, Views: 500, Likes: 40, Price: 99, CreatedAt: day(1)},
		{ID: "2", Title: "Support Agent", Description: "Resolves support tickets", Category: "support", Tags: []string{"helpdesk"}, Views: 900, Likes: 75, Price: 49, CreatedAt: day(3)},
		{ID: "3", Title: "Data Analyst", Description: "Builds dashboards and reports", Category: "analytics", Tags: []string{"sql", "charts"}, Views: 300, Likes: 75, Price: 149, CreatedAt: day(2)},
		{ID: "4", Title: "Sales Researcher", Description: "Finds leads", Category: "sales", Tags: []string{"prospecting"}, Views: 120, Likes: 10, Price: 29, CreatedAt: day(4)},
	}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestProject_CategoryFilter(t *testing.T) {
	records := sampleRecords()

	got := Project(records, FilterState{Category: "sales"})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "sales", r.Category)
	}

	// The "all" sentinel and an empty category keep everything
	assert.Len(t, Project(records, FilterState{Category: CategoryAll}), len(records))
	assert.Len(t, Project(records, FilterState{}), len(records))
}

func TestProject_CategoryWithNoMatches(t *testing.T) {
	got := Project(sampleRecords(), FilterState{Category: "legal"})
	assert.Empty(t, got)
}

func TestProject_QueryMatchesScalarFields(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match", "sales", []string{"1", "4"}},
		{"case insensitive", "SALES", []string{"1", "4"}},
		{"description match", "dashboards", []string{"3"}},
		{"tag match", "helpdesk", []string{"2"}},
		{"empty query matches all", "", []string{"1", "2", "3", "4"}},
		{"whitespace query matches all", "   ", []string{"1", "2", "3", "4"}},
		{"no match", "accounting", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(records, FilterState{Query: tt.query})
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestProject_QueryAndCategoryCombine(t *testing.T) {
	got := Project(sampleRecords(), FilterState{Query: "leads", Category: "sales"})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestProject_SortKeys(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name string
		sort SortKey
		want []string
	}{
		{"recent", SortRecent, []string{"4", "2", "3", "1"}},
		{"trending", SortTrending, []string{"2", "1", "3", "4"}},
		{"price low", SortPriceLow, []string{"4", "2", "1", "3"}},
		{"price high", SortPriceHigh, []string{"3", "1", "2", "4"}},
		{"name", SortName, []string{"3", "1", "4", "2"}},
		{"unknown key keeps fetch order", SortKey("bogus"), []string{"1", "2", "3", "4"}},
		{"empty key keeps fetch order", SortKey(""), []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(records, FilterState{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestProject_SortIsStable(t *testing.T) {
	// Records 2 and 3 have equal likes; the one fetched first must
	// stay first when sorting by popularity.
	got := Project(sampleRecords(), FilterState{Sort: SortPopular})
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(got))
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	Project(records, FilterState{Sort: SortName, Query: "sales"})

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(records))
}

func TestProject_EmptyCollection(t *testing.T) {
	got := Project(nil, FilterState{Query: "anything", Sort: SortRecent})
	assert.Empty(t, got)
}
