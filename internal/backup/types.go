package backup

import (
	"io/fs"
	"time"

	"github.com/nahidreza/folio/internal/errors"
)

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// DefaultRetentionCount is the number of backups kept per entry.
const DefaultRetentionCount = 5

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates the entry has never been backed up.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupCorrupted indicates the stored copy no longer matches its hash.
	ErrBackupCorrupted = errors.New("backup corrupted")
)

// Manifest describes one backup. It is stored as manifest.json.
type Manifest struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Kind      string    `json:"kind"`
	Slug      string    `json:"slug"`
	File      File      `json:"file"`
	// FolioVersion is the build that wrote the backup.
	FolioVersion string `json:"folio_version"`

	// ID is the directory name; populated on load, not stored.
	ID string `json:"-"`
}

// File is the backed up copy.
type File struct {
	OriginalPath string      `json:"original_path"`
	Name         string      `json:"name"`
	SHA256Hash   string      `json:"sha256_hash"`
	Mode         fs.FileMode `json:"mode"`
}
