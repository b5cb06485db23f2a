// Package portfolio defines the two kinds of content a portfolio site
// serves, case studies ("works") and projects, on top of the generic
// content store.
package portfolio

import (
	"github.com/nahidreza/folio/internal/content"
)

// Kind names a content kind. It doubles as the URL segment and CLI noun.
type Kind string

// Supported kinds.
const (
	KindWorks    Kind = "works"
	KindProjects Kind = "projects"
)

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindWorks, KindProjects}
}

// ParseKind validates a kind name. Singular forms are accepted.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "works", "work":
		return KindWorks, true
	case "projects", "project":
		return KindProjects, true
	default:
		return "", false
	}
}

// Metadata keys recognized in front matter.
const (
	KeyTitle            = "title"
	KeyShortDescription = "shortDescription"
	KeyTech             = "tech"
	KeyYear             = "year"
	KeyThumbnail        = "thumbnail"
	KeyClient           = "client"
	KeyGitHub           = "github"
	KeyLive             = "live"
)

// KnownKeys returns the metadata keys a kind understands.
func KnownKeys(k Kind) []string {
	keys := []string{KeyTitle, KeyShortDescription, KeyTech, KeyYear, KeyThumbnail, KeyClient}
	if k == KindProjects {
		keys = append(keys, KeyGitHub, KeyLive)
	}
	return keys
}

// Summary is the listing view of a case study. Optional fields are empty
// when absent and are left out of JSON.
type Summary struct {
	Slug             string   `json:"slug" yaml:"slug"`
	Title            string   `json:"title" yaml:"title"`
	ShortDescription string   `json:"shortDescription" yaml:"shortDescription"`
	Tech             []string `json:"tech" yaml:"tech"`
	Year             string   `json:"year,omitempty" yaml:"year,omitempty"`
	Thumbnail        string   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Client           string   `json:"client,omitempty" yaml:"client,omitempty"`
}

// Base returns the summary itself, satisfying Listing.
func (s Summary) Base() Summary {
	return s
}

// ProjectSummary is the listing view of a project: a Summary plus links.
type ProjectSummary struct {
	Summary `yaml:",inline"`
	GitHub  string `json:"github,omitempty" yaml:"github,omitempty"`
	Live    string `json:"live,omitempty" yaml:"live,omitempty"`
}

// NormalizeWork applies the case study defaults: title falls back to the
// slug, shortDescription to "", and tech to an empty list when it is not a
// sequence.
func NormalizeWork(slug string, f content.Fields) Summary {
	year, _ := f.Scalar(KeyYear)
	thumbnail, _ := f.Scalar(KeyThumbnail)
	client, _ := f.Scalar(KeyClient)

	return Summary{
		Slug:             slug,
		Title:            f.StringOr(KeyTitle, slug),
		ShortDescription: f.StringOr(KeyShortDescription, ""),
		Tech:             f.Strings(KeyTech),
		Year:             year,
		Thumbnail:        thumbnail,
		Client:           client,
	}
}

// NormalizeProject applies the case study defaults plus the optional links.
func NormalizeProject(slug string, f content.Fields) ProjectSummary {
	github, _ := f.Scalar(KeyGitHub)
	live, _ := f.Scalar(KeyLive)

	return ProjectSummary{
		Summary: NormalizeWork(slug, f),
		GitHub:  github,
		Live:    live,
	}
}

// NewWorkStore returns a store of case studies under dir.
func NewWorkStore(dir string, opts ...content.Option) *content.Store[Summary] {
	return content.NewStore(dir, NormalizeWork, opts...)
}

// NewProjectStore returns a store of projects under dir.
func NewProjectStore(dir string, opts ...content.Option) *content.Store[ProjectSummary] {
	return content.NewStore(dir, NormalizeProject, opts...)
}
