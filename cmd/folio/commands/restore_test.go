package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/internal/backup"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
)

func TestRunNew_ForceBacksUp(t *testing.T) {
	root := writeContent(t)
	works := section(t, testSite(t, root), portfolio.KindWorks)
	m := backup.NewManager(backup.WithBackupDir(t.TempDir()))
	original, err := os.ReadFile(filepath.Join(root, "case-studies", "desk.md"))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = runNew(&buf, works, newOptions{
		draft:   portfolio.Draft{Slug: "desk", Title: "Replaced"},
		format:  "yaml",
		force:   true,
		backups: m,
	}, time.Now())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Backed up the previous version as ")

	buf.Reset()
	require.NoError(t, runRestore(&buf, m, portfolio.KindWorks, "desk", "", true))
	assert.Contains(t, buf.String(), "ID")
	assert.Contains(t, buf.String(), filepath.Join(root, "case-studies", "desk.md"))

	buf.Reset()
	require.NoError(t, runRestore(&buf, m, portfolio.KindWorks, "desk", "", false))
	assert.Contains(t, buf.String(), "Restored works/desk")

	data, err := os.ReadFile(filepath.Join(root, "case-studies", "desk.md"))
	require.NoError(t, err)
	assert.Equal(t, string(original), string(data))
}

func TestRunRestore_NoBackups(t *testing.T) {
	m := backup.NewManager(backup.WithBackupDir(t.TempDir()))

	err := runRestore(&bytes.Buffer{}, m, portfolio.KindProjects, "cli", "", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backup.ErrNoBackupsFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestRestoreCommand_UsesConfiguredDir(t *testing.T) {
	isolate(t)
	root := writeContent(t)
	t.Setenv("FOLIO_BACKUP_DIR", t.TempDir())

	_, err := execute(t, "works", "new", "atlas", "--force", "--content-dir", root)
	require.NoError(t, err)

	out, err := execute(t, "works", "restore", "atlas", "--content-dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Restored works/atlas")

	data, err := os.ReadFile(filepath.Join(root, "case-studies", "atlas.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Atlas")
}
