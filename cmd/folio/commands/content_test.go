package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/internal/cli/prompt"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/logging"
	"github.com/nahidreza/folio/internal/portfolio"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

// writeContent lays out a small content tree and returns its root.
func writeContent(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	works := filepath.Join(root, "case-studies")
	writeFile(t, works, "atlas.md", "---\ntitle: Atlas\nshortDescription: Map tiles\ntech: [Go, PostGIS]\nyear: 2022 - 2024\nclient: Acme\n---\n# Overview\n\n"+strings.Repeat("word ", 200)+"\n")
	writeFile(t, works, "desk.md", "---\ntitle: Desk\nshortDescription: Ticketing\ntech: [Go]\nyear: 2021\n---\nShort body.\n")
	writeFile(t, works, "broken.md", "---\ntitle: [oops\n---\n")
	writeFile(t, filepath.Join(root, "projects"), "cli.md", "+++\ntitle = \"CLI\"\ngithub = \"https://github.com/jane/cli\"\n+++\n## Usage\n")
	return root
}

func testSite(t *testing.T, root string) *portfolio.Site {
	t.Helper()
	return portfolio.Open(portfolio.Options{
		Name:        "Jane Doe",
		ContentDir:  root,
		WorksDir:    "case-studies",
		ProjectsDir: "projects",
		Logger:      logging.NewDiscard(),
	})
}

func section(t *testing.T, site *portfolio.Site, kind portfolio.Kind) portfolio.Section {
	t.Helper()
	sec, ok := site.Section(kind)
	require.True(t, ok)
	return sec
}

func TestRunList(t *testing.T) {
	works := section(t, testSite(t, writeContent(t)), portfolio.KindWorks)

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runList(&buf, works, listOptions{}))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "SLUG")
		assert.Contains(t, lines[1], "atlas")
		assert.Contains(t, lines[1], "Go, PostGIS")
		assert.Contains(t, lines[2], "desk")
		assert.NotContains(t, buf.String(), "broken")
	})

	t.Run("sorted by year", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runList(&buf, works, listOptions{byYear: true, asJSON: true}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "atlas", got[0]["slug"])
		assert.Equal(t, "desk", got[1]["slug"])
	})

	t.Run("filtered", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runList(&buf, works, listOptions{filter: portfolio.Filter{Tech: "postgis"}}))
		assert.Contains(t, buf.String(), "atlas")
		assert.NotContains(t, buf.String(), "desk")

		buf.Reset()
		require.NoError(t, runList(&buf, works, listOptions{filter: portfolio.Filter{Query: "kotlin"}}))
		assert.Equal(t, "No case studies match\n", buf.String())
	})

	t.Run("empty", func(t *testing.T) {
		empty := portfolio.NewSection(portfolio.KindProjects, portfolio.NewProjectStore(filepath.Join(t.TempDir(), "missing")))
		var buf bytes.Buffer
		require.NoError(t, runList(&buf, empty, listOptions{}))
		assert.Contains(t, buf.String(), "No projects found in")
	})
}

func TestRunSlugs(t *testing.T) {
	works := section(t, testSite(t, writeContent(t)), portfolio.KindWorks)

	var buf bytes.Buffer
	require.NoError(t, runSlugs(&buf, works, false))
	assert.Equal(t, "atlas\nbroken\ndesk\n", buf.String())

	buf.Reset()
	require.NoError(t, runSlugs(&buf, works, true))
	assert.JSONEq(t, `["atlas","broken","desk"]`, buf.String())
}

func TestRunShow(t *testing.T) {
	site := testSite(t, writeContent(t))
	works := section(t, site, portfolio.KindWorks)

	t.Run("truncated text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runShow(&buf, works, "atlas", showOptions{}))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "Atlas\n"))
		assert.Contains(t, out, "Slug: atlas")
		assert.Contains(t, out, "Tech: Go, PostGIS")
		assert.Contains(t, out, "Year: 2022 - 2024")
		assert.Contains(t, out, "Client: Acme")
		assert.Contains(t, out, "[truncated, use --full for complete output]")
	})

	t.Run("full", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runShow(&buf, works, "atlas", showOptions{full: true}))
		assert.NotContains(t, buf.String(), "[truncated")
		assert.Contains(t, buf.String(), strings.Repeat("word ", 200))
	})

	t.Run("project links", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runShow(&buf, section(t, site, portfolio.KindProjects), "cli", showOptions{}))
		assert.Contains(t, buf.String(), "GitHub: https://github.com/jane/cli")
		assert.Contains(t, buf.String(), "## Usage")
	})

	t.Run("json with html", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runShow(&buf, works, "desk", showOptions{asJSON: true, html: true}))

		var got struct {
			Frontmatter map[string]any `json:"frontmatter"`
			Content     string         `json:"content"`
			HTML        string         `json:"html"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "Desk", got.Frontmatter["title"])
		assert.Equal(t, "Short body.\n", got.Content)
		assert.Equal(t, "<p>Short body.</p>\n", got.HTML)
	})

	t.Run("not found", func(t *testing.T) {
		err := runShow(&bytes.Buffer{}, works, "nope", showOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

		var exitErr *errors.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Contains(t, exitErr.Suggestion, "folio works slugs")
	})

	t.Run("invalid front matter", func(t *testing.T) {
		err := runShow(&bytes.Buffer{}, works, "broken", showOptions{})
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})
}

type fakePicker struct {
	idx   int
	err   error
	items []prompt.Item
}

func (f *fakePicker) Pick(items []prompt.Item) (int, error) {
	f.items = items
	if len(items) == 0 {
		return 0, prompt.ErrNoItems
	}
	return f.idx, f.err
}

func TestPickSlug(t *testing.T) {
	works := section(t, testSite(t, writeContent(t)), portfolio.KindWorks)

	t.Run("selects", func(t *testing.T) {
		picker := &fakePicker{idx: 1}
		slug, err := pickSlug(works, picker)
		require.NoError(t, err)
		assert.Equal(t, "desk", slug)
		require.Len(t, picker.items, 2)
		assert.Contains(t, picker.items[0].Preview, "Map tiles")
	})

	t.Run("cancelled", func(t *testing.T) {
		_, err := pickSlug(works, &fakePicker{err: prompt.ErrSelectionCancelled})
		require.Error(t, err)
		assert.True(t, errors.Is(err, prompt.ErrSelectionCancelled))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})

	t.Run("no entries", func(t *testing.T) {
		empty := portfolio.NewSection(portfolio.KindWorks, portfolio.NewWorkStore(t.TempDir()))
		_, err := pickSlug(empty, &fakePicker{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no case studies in")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "héll...", truncate("héllo wörld", 7))
}

func TestKindCommands(t *testing.T) {
	isolate(t)
	root := writeContent(t)

	out, err := execute(t, "work", "list", "--content-dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "atlas")

	out, err = execute(t, "projects", "show", "cli", "--content-dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "CLI")

	_, err = execute(t, "works", "list", "--sort", "title", "--content-dir", root)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
