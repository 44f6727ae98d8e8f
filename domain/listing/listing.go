// Package listing implements the shared filter/sort pipeline used by the
// marketplace, artifact gallery, and help pages. The pipeline is a pure
// function of the fetched collection and the current filter state, so
// every keystroke simply recomputes the projection.
package listing

import (
	"sort"
	"strings"
	"time"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// SortKey selects the field a projection is ordered by
type SortKey string

const (
	SortRecent    SortKey = "recent"     // created timestamp, newest first
	SortPopular   SortKey = "popular"    // likes, highest first
	SortTrending  SortKey = "trending"   // views, highest first
	SortPriceLow  SortKey = "price-low"  // price ascending
	SortPriceHigh SortKey = "price-high" // price descending
	SortName      SortKey = "name"       // title ascending
)

// Record is the normalized shape of any filterable, sortable entity:
// an agent listing, an artifact, a plan, or a help article. It is built
// once at the fetch boundary and never mutated afterwards.
type Record struct {
	ID          string
	Title       string
	Description string
	Category    string
	Tags        []string

	Views     int
	Likes     int
	Price     float64
	CreatedAt time.Time
}

// FilterState is the current search/category/sort selection
type FilterState struct {
	Query    string
	Category string
	Sort     SortKey
}

// Project returns the subset of records matching the filter state, in
// the requested order. Ties keep their original fetch order, and an
// empty or unknown sort key preserves fetch order entirely.
func Project(records []Record, f FilterState) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !matchCategory(r, f.Category) {
			continue
		}
		if !matchQuery(r, f.Query) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, f.Sort)
	return out
}

func matchCategory(r Record, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return r.Category == category
}

// matchQuery does a case-insensitive substring match against the
// scalar fields and a membership match against the tag list. An empty
// query matches everything.
func matchQuery(r Record, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sortRecords(records []Record, key SortKey) {
	var less func(a, b Record) bool

	switch key {
	case SortRecent:
		less = func(a, b Record) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortPopular:
		less = func(a, b Record) bool { return a.Likes > b.Likes }
	case SortTrending:
		less = func(a, b Record) bool { return a.Views > b.Views }
	case SortPriceLow:
		less = func(a, b Record) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b Record) bool { return a.Price > b.Price }
	case SortName:
		less = func(a, b Record) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default:
		// Unknown or empty key keeps fetch order
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}
