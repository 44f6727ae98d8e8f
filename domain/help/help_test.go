package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthanagula3/agiagentautomation-sub009/domain/listing"
)

func TestSearch_All(t *testing.T) {
	svc := NewService()

	got := svc.Search(listing.FilterState{})
	assert.Len(t, got, len(Articles()))
}

func TestSearch_Category(t *testing.T) {
	svc := NewService()

	got := svc.Search(listing.FilterState{Category: "billing"})
	require.NotEmpty(t, got)
	for _, a := range got {
		assert.Equal(t, "billing", a.Category)
	}
}

func TestSearch_Query(t *testing.T) {
	svc := NewService()

	got := svc.Search(listing.FilterState{Query: "refund"})
	require.Len(t, got, 1)
	assert.Equal(t, "refunds", got[0].ID)

	// Tag membership matches too
	got = svc.Search(listing.FilterState{Query: "crm"})
	require.Len(t, got, 1)
	assert.Equal(t, "integrations", got[0].ID)
}

func TestSearch_NoMatch(t *testing.T) {
	svc := NewService()

	got := svc.Search(listing.FilterState{Query: "kubernetes"})
	assert.Empty(t, got)
}

func TestSearch_PreservesDisplayOrder(t *testing.T) {
	svc := NewService()

	got := svc.Search(listing.FilterState{Category: "getting-started"})
	require.Len(t, got, 3)
	assert.Equal(t, "what-is-an-ai-employee", got[0].ID)
	assert.Equal(t, "how-do-i-hire", got[1].ID)
	assert.Equal(t, "talk-to-sales", got[2].ID)
}

func TestCategories(t *testing.T) {
	svc := NewService()

	got := svc.Categories()
	assert.Equal(t, []string{"getting-started", "billing", "security", "product"}, got)
}
