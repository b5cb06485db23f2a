package portfolio

import (
	"slices"
	"strings"
)

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	// Query matches slug, title, description and tech, case-insensitively.
	Query string
	// Tech keeps entries listing this technology, case-insensitively.
	Tech string
}

// Search returns the items matching f. With a query, results are ordered by
// match quality; otherwise the input order is kept.
func Search(items []Listing, f Filter) []Listing {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	tech := strings.TrimSpace(f.Tech)

	type scored struct {
		item  Listing
		score int
	}
	var hits []scored
	for _, item := range items {
		s := item.Base()
		if tech != "" && !slices.ContainsFunc(s.Tech, func(t string) bool { return strings.EqualFold(t, tech) }) {
			continue
		}
		score := scoreMatch(s, query)
		if query != "" && score == 0 {
			continue
		}
		hits = append(hits, scored{item, score})
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return b.score - a.score
	})

	out := make([]Listing, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// scoreMatch grades how well s matches query.
//
// Scoring:
//   - 100: slug or title equals the query
//   - 75: slug or title starts with the query
//   - 50: slug or title contains the query
//   - 25: a tech item equals the query
//   - 10: only the description contains the query
//   - 0: no match or empty query
func scoreMatch(s Summary, query string) int {
	if query == "" {
		return 0
	}

	slug := strings.ToLower(s.Slug)
	title := strings.ToLower(s.Title)

	switch {
	case slug == query || title == query:
		return 100
	case strings.HasPrefix(slug, query) || strings.HasPrefix(title, query):
		return 75
	case strings.Contains(slug, query) || strings.Contains(title, query):
		return 50
	case slices.ContainsFunc(s.Tech, func(t string) bool { return strings.ToLower(t) == query }):
		return 25
	case strings.Contains(strings.ToLower(s.ShortDescription), query):
		return 10
	}
	return 0
}
