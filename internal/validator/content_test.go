package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/internal/portfolio"
)

func writeSection(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func issuesFor(r *Result, entry string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Entry == entry {
			out = append(out, i)
		}
	}
	return out
}

func TestCheckSection_Works(t *testing.T) {
	dir := writeSection(t, map[string]string{
		"clean.md":  "---\ntitle: Clean\nshortDescription: ok\ntech: [Go]\nyear: 2024\nthumbnail: /img/c.png\n---\nBody\n",
		"bare.md":   "Just text\n",
		"broken.md": "---\ntitle: [oops\n---\n",
		"sloppy.md": "---\ntitle: [a, b]\ntech: React\nyear: soon\nthumbnail: not a url\ncolour: blue\n---\n",
		"nested.md": "---\ntitle: Nested\nshortDescription: x\ntech: [Go, {k: v}]\n---\nBody\n",
		"notes.txt": "ignored",
		"empty.md":  "---\ntitle: \"\"\nshortDescription: x\n---\n  \n",
	})

	result, err := CheckSection(portfolio.NewSection(portfolio.KindWorks, portfolio.NewWorkStore(dir)))
	require.NoError(t, err)
	assert.Equal(t, 6, result.Checked)

	assert.Empty(t, issuesFor(result, "works/clean"))

	broken := issuesFor(result, "works/broken")
	require.Len(t, broken, 1)
	assert.Equal(t, SeverityError, broken[0].Severity)
	assert.Contains(t, broken[0].Context["cause"], "decoding yaml frontmatter")

	bare := issuesFor(result, "works/bare")
	require.NotEmpty(t, bare)
	assert.Contains(t, bare[0].Message, "no front matter")

	fields := map[string]Severity{}
	for _, i := range issuesFor(result, "works/sloppy") {
		fields[i.Field] = i.Severity
	}
	assert.Equal(t, map[string]Severity{
		"title":            SeverityWarning,
		"shortDescription": SeverityWarning,
		"tech":             SeverityWarning,
		"year":             SeverityWarning,
		"thumbnail":        SeverityWarning,
		"colour":           SeverityInfo,
		"":                 SeverityWarning,
	}, fields)

	nested := issuesFor(result, "works/nested")
	require.Len(t, nested, 1)
	assert.Equal(t, "tech", nested[0].Field)

	var emptyMsgs []string
	for _, i := range issuesFor(result, "works/empty") {
		emptyMsgs = append(emptyMsgs, i.Message)
	}
	assert.ElementsMatch(t, []string{"is empty", "body is empty"}, emptyMsgs)
}

func TestCheckSection_ProjectLinks(t *testing.T) {
	dir := writeSection(t, map[string]string{
		"good.md": "---\ntitle: Good\nshortDescription: x\ngithub: https://github.com/x/y\nlive: http://y.dev\n---\nBody\n",
		"bad.md":  "---\ntitle: Bad\nshortDescription: x\ngithub: github.com/x/y\nlive: /relative\n---\nBody\n",
	})

	result, err := CheckSection(portfolio.NewSection(portfolio.KindProjects, portfolio.NewProjectStore(dir)))
	require.NoError(t, err)
	assert.Empty(t, issuesFor(result, "projects/good"))

	var fields []string
	for _, i := range issuesFor(result, "projects/bad") {
		fields = append(fields, i.Field)
	}
	assert.ElementsMatch(t, []string{"github", "live"}, fields)
}

func TestCheckSite(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "case-studies"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "case-studies", "a.md"), []byte("---\ntitle: A\n---\nBody\n"), 0o644))

	site := portfolio.Open(portfolio.Options{ContentDir: root, WorksDir: "case-studies", ProjectsDir: "projects"})
	result, err := CheckSite(site)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
	assert.False(t, result.HasErrors())
	assert.True(t, result.HasWarnings(), "missing shortDescription")
}
