package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/pkg/frontmatter"
)

func TestGenDocCommand(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "reference")

	out, err := execute(t, "gen-doc", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Documentation generated in "+dir)

	data, err := os.ReadFile(filepath.Join(dir, "folio_works_list.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n"))
	assert.Contains(t, string(data), "/docs/reference/folio_works/")

	// The generated pages are themselves valid folio content.
	format, header, _ := frontmatter.Split(data)
	require.Equal(t, frontmatter.FormatYAML, format)
	var fields map[string]any
	require.NoError(t, frontmatter.Decode(format, header, &fields))
	assert.Equal(t, "folio works list", fields["title"])
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "/docs/reference/folio_serve/", linkHandler("folio_serve.md"))
}
