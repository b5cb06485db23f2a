package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/internal/errors"
)

func TestResolveHome(t *testing.T) {
	got, err := ResolveHome()
	if err != nil {
		assert.True(t, errors.Is(err, ErrHomeDirNotFound))
		return
	}
	want, _ := os.UserHomeDir()
	assert.Equal(t, want, got)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/portfolio/content", filepath.Join(home, "portfolio", "content")},
		{"content", "content"},
		{"/abs/content", "/abs/content"},
		{"~other/content", "~other/content"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClean(t *testing.T) {
	got, err := Clean("content/./projects/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("content", "projects"), got)

	for _, bad := range []string{"", "a\x00b"} {
		_, err := Clean(bad)
		assert.True(t, errors.Is(err, ErrInvalidPath), "%q", bad)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")
	assert.Equal(t, filepath.Join(ConfigHome(), AppName), ConfigDir())

	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	assert.Equal(t, dir, ConfigDir())
}

func TestXDGHomesAreAbsolute(t *testing.T) {
	assert.True(t, filepath.IsAbs(ConfigHome()))
	assert.True(t, filepath.IsAbs(StateHome()))
	assert.True(t, filepath.IsAbs(DefaultLogFile()))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir, 0))
	require.NoError(t, EnsureDir(dir, 0), "idempotent")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
