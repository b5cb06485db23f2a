package portfolio

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// LatestYear extracts the most recent four-digit year mentioned in a year
// field such as "2024" or "2022 - 2024". It returns 0 when there is none.
func LatestYear(year string) int {
	latest := 0
	for _, m := range yearPattern.FindAllString(year, -1) {
		if y, err := strconv.Atoi(m); err == nil && y > latest {
			latest = y
		}
	}
	return latest
}

// SortByYear orders listings newest first. Entries without a year go last;
// ties keep title order.
func SortByYear(items []Listing) {
	slices.SortStableFunc(items, func(a, b Listing) int {
		ya, yb := LatestYear(a.Base().Year), LatestYear(b.Base().Year)
		if ya != yb {
			return yb - ya
		}
		return strings.Compare(strings.ToLower(a.Base().Title), strings.ToLower(b.Base().Title))
	})
}

// PageTitle builds the document title for a page. An empty title yields
// the section title, e.g. "Work | Jane Doe".
func PageTitle(site string, kind Kind, title string) string {
	label := "Work"
	detail := "Case Study"
	if kind == KindProjects {
		label = "Projects"
		detail = "Project"
	}

	var parts []string
	if title == "" {
		parts = append(parts, label)
	} else {
		parts = append(parts, title, detail)
	}
	if site != "" {
		parts = append(parts, site)
	}
	return strings.Join(parts, " | ")
}
