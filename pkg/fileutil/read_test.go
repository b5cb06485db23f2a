package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/internal/errors"
)

func sized(t *testing.T, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entry.md")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(size))
	require.NoError(t, f.Close())
	return path
}

func TestReadLimited(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		limit   int64
		wantErr bool
	}{
		{"small", 100, 0, false},
		{"exactly default", DefaultMaxSize, 0, false},
		{"over default", DefaultMaxSize + 1, 0, true},
		{"custom limit", 11, 10, true},
		{"custom limit exact", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadLimited(sized(t, tt.size), tt.limit)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrFileTooLarge))
				return
			}
			require.NoError(t, err)
			assert.Len(t, data, int(tt.size))
		})
	}
}

func TestReadLimited_Failures(t *testing.T) {
	_, err := ReadLimited(filepath.Join(t.TempDir(), "missing.md"), 0)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = ReadLimited(t.TempDir(), 0)
	assert.ErrorContains(t, err, "is a directory")
}
