package backup

import (
	"path/filepath"

	"github.com/nahidreza/folio/internal/paths"
)

// DefaultDir returns the root backup directory, <state>/folio/backups.
func DefaultDir() string {
	return filepath.Join(paths.StateHome(), paths.AppName, "backups")
}
