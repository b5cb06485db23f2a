package validator

import (
	"net/url"
	"slices"
	"strings"

	"github.com/nahidreza/folio/internal/content"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/pkg/frontmatter"
)

// CheckSite lints every entry of every section. Only filesystem failures
// are returned as errors; content problems become issues.
func CheckSite(site *portfolio.Site) (*Result, error) {
	result := &Result{}
	for _, sec := range site.Sections() {
		r, err := CheckSection(sec)
		if err != nil {
			return nil, err
		}
		result.Merge(r)
	}
	return result, nil
}

// CheckSection lints the entries of one section.
func CheckSection(sec portfolio.Section) (*Result, error) {
	result := &Result{}

	slugs, err := sec.Slugs()
	if err != nil {
		return nil, err
	}
	slices.Sort(slugs)

	for _, slug := range slugs {
		entry := string(sec.Kind()) + "/" + slug
		doc, ok, err := sec.Document(slug)
		switch {
		case err != nil && errors.Is(err, frontmatter.ErrInvalidFrontmatter):
			result.Checked++
			result.Add(Issue{
				Severity: SeverityError,
				Entry:    entry,
				Message:  "front matter cannot be parsed; entry is left out of listings",
				Context:  map[string]string{"cause": err.Error()},
			})
			continue
		case err != nil:
			return nil, err
		case !ok:
			continue
		}

		result.Checked++
		checkDocument(result, sec.Kind(), entry, doc)
	}

	return result, nil
}

func checkDocument(r *Result, kind portfolio.Kind, entry string, doc *content.Document) {
	f := doc.Fields

	if doc.Format == frontmatter.FormatNone {
		r.AddWarning(entry, "", "no front matter; title falls back to the slug", nil)
	}

	switch {
	case !f.Has(portfolio.KeyTitle):
		if doc.Format != frontmatter.FormatNone {
			r.AddWarning(entry, portfolio.KeyTitle, "missing; falls back to the slug", nil)
		}
	case !isScalar(f, portfolio.KeyTitle):
		r.AddWarning(entry, portfolio.KeyTitle, "is not a scalar; falls back to the slug", f[portfolio.KeyTitle])
	case f.StringOr(portfolio.KeyTitle, "") == "":
		r.AddWarning(entry, portfolio.KeyTitle, "is empty", nil)
	}

	if !isScalar(f, portfolio.KeyShortDescription) {
		r.AddWarning(entry, portfolio.KeyShortDescription, "missing or not a scalar; defaults to empty", nil)
	}

	if f.Has(portfolio.KeyTech) {
		if !f.IsSequence(portfolio.KeyTech) {
			r.AddWarning(entry, portfolio.KeyTech, "is not a list; treated as empty", f[portfolio.KeyTech])
		} else if items, _ := f[portfolio.KeyTech].([]any); len(f.Strings(portfolio.KeyTech)) != len(items) {
			r.AddWarning(entry, portfolio.KeyTech, "contains non-scalar items that are dropped", nil)
		}
	}

	if year, ok := f.Scalar(portfolio.KeyYear); ok && portfolio.LatestYear(year) == 0 {
		r.AddWarning(entry, portfolio.KeyYear, "has no four-digit year; sorts last", year)
	}

	links := []string{portfolio.KeyThumbnail}
	if kind == portfolio.KindProjects {
		links = append(links, portfolio.KeyGitHub, portfolio.KeyLive)
	}
	for _, key := range links {
		v, ok := f.Scalar(key)
		if !ok || v == "" {
			continue
		}
		if !validLink(key, v) {
			r.AddWarning(entry, key, "is not a valid link", v)
		}
	}

	known := portfolio.KnownKeys(kind)
	var unknown []string
	for key := range f {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		r.AddInfo(entry, key, "unknown key is ignored", nil)
	}

	if strings.TrimSpace(doc.Body) == "" {
		r.AddWarning(entry, "", "body is empty", nil)
	}
}

func isScalar(f content.Fields, key string) bool {
	_, ok := f.Scalar(key)
	return ok
}

// validLink accepts absolute http(s) URLs, and for thumbnails also
// site-rooted paths such as /images/x.png.
func validLink(key, v string) bool {
	if key == portfolio.KeyThumbnail && strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "//") {
		return true
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
