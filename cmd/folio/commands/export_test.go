package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/pkg/fileutil"
)

func TestExportEncoding(t *testing.T) {
	tests := []struct {
		format, out string
		want        fileutil.Encoding
		wantErr     bool
	}{
		{"", "content.json", fileutil.EncodingJSON, false},
		{"", "content.yaml", fileutil.EncodingYAML, false},
		{"", "content.yml", fileutil.EncodingYAML, false},
		{"", "content", fileutil.EncodingJSON, false},
		{"yaml", "content.json", fileutil.EncodingYAML, false},
		{"toml", "content.toml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.out, func(t *testing.T) {
			got, err := exportEncoding(tt.format, tt.out)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildExport(t *testing.T) {
	site := testSite(t, writeContent(t))
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	bundle, err := buildExport(site, portfolio.Kinds(), now)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", bundle.Site)
	assert.Equal(t, now, bundle.Generated)

	works := bundle.Sections[portfolio.KindWorks]
	require.Len(t, works, 2)
	assert.Equal(t, "atlas", works[0].Frontmatter.Base().Slug)
	assert.Equal(t, "Atlas | Case Study | Jane Doe", works[0].PageTitle)
	assert.Equal(t, "desk", works[1].Frontmatter.Base().Slug)

	projects := bundle.Sections[portfolio.KindProjects]
	require.Len(t, projects, 1)
	assert.Equal(t, "CLI | Project | Jane Doe", projects[0].PageTitle)
	assert.Equal(t, "## Usage\n", projects[0].Content)
}

func TestExportCommand(t *testing.T) {
	isolate(t)
	root := writeContent(t)

	t.Run("json", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "dist", "content.json")
		_, err := execute(t, "export", "-o", out, "--content-dir", root)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var got struct {
			Sections map[string][]struct {
				Frontmatter map[string]any `json:"frontmatter"`
				PageTitle   string         `json:"pageTitle"`
			} `json:"sections"`
		}
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Len(t, got.Sections["works"], 2)
		assert.Len(t, got.Sections["projects"], 1)
		assert.Equal(t, "https://github.com/jane/cli", got.Sections["projects"][0].Frontmatter["github"])
	})

	t.Run("yaml single kind", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "content.yaml")
		_, err := execute(t, "export", "-o", out, "--kind", "projects", "--content-dir", root)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(data, &got))
		sections, ok := got["sections"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, sections, "projects")
		assert.NotContains(t, sections, "works")
	})
}
