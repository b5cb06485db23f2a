package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2024", 2024},
		{"2022 - 2024", 2024},
		{"2024–2022", 2024},
		{"Spring 2021", 2021},
		{"ongoing", 0},
		{"", 0},
		{"12345", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LatestYear(tt.in))
		})
	}
}

func TestSortByYear(t *testing.T) {
	items := []Listing{
		Summary{Slug: "none", Title: "None"},
		Summary{Slug: "old", Title: "Old", Year: "2019"},
		ProjectSummary{Summary: Summary{Slug: "range", Title: "Range", Year: "2020 - 2023"}},
		Summary{Slug: "b", Title: "beta", Year: "2023"},
		Summary{Slug: "new", Title: "New", Year: "2024"},
	}

	SortByYear(items)

	var got []string
	for _, it := range items {
		got = append(got, it.Base().Slug)
	}
	assert.Equal(t, []string{"new", "b", "range", "old", "none"}, got)
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name  string
		site  string
		kind  Kind
		title string
		want  string
	}{
		{"case study", "Jane Doe", KindWorks, "Service Desk", "Service Desk | Case Study | Jane Doe"},
		{"project", "Jane Doe", KindProjects, "CLI", "CLI | Project | Jane Doe"},
		{"works index", "Jane Doe", KindWorks, "", "Work | Jane Doe"},
		{"projects index", "Jane Doe", KindProjects, "", "Projects | Jane Doe"},
		{"no site", "", KindWorks, "Desk", "Desk | Case Study"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageTitle(tt.site, tt.kind, tt.title))
		})
	}
}
