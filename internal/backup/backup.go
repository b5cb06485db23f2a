package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/nahidreza/folio/cmd"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/pkg/fileutil"
)

const (
	manifestName = "manifest.json"
	idLayout     = "20060102T150405"
)

// Manager creates, lists, restores and prunes entry backups.
type Manager struct {
	rootDir        string
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets the number of backups kept per entry.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// WithClock sets the time source for backup IDs.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager rooted at DefaultDir unless overridden.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir:        DefaultDir(),
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies the file at path and records it under kind/slug, then
// prunes the entry's older backups.
func (m *Manager) Backup(kind, slug, path string) (*Manifest, error) {
	if kind == "" || slug == "" {
		return nil, errors.New("kind and slug are required")
	}

	created := m.now().UTC()
	id, dir, err := m.reserve(kind, slug, created)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	hash, mode, err := copyFile(path, filepath.Join(dir, name))
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrapf(err, "backing up %s", path)
	}

	manifest := &Manifest{
		Version:   ManifestVersion,
		CreatedAt: created,
		Kind:      kind,
		Slug:      slug,
		File: File{
			OriginalPath: path,
			Name:         name,
			SHA256Hash:   hash,
			Mode:         mode,
		},
		FolioVersion: cmd.Version,
		ID:           id,
	}
	if err := fileutil.WriteEncoded(filepath.Join(dir, manifestName), manifest, fileutil.EncodingJSON); err != nil {
		_ = os.RemoveAll(dir)
		return nil, errors.Wrap(err, "writing manifest")
	}

	if err := m.Prune(kind, slug, m.retentionCount); err != nil {
		return manifest, err
	}
	return manifest, nil
}

// reserve creates a fresh backup directory. Backups within the same second
// get a numeric suffix.
func (m *Manager) reserve(kind, slug string, at time.Time) (id, dir string, err error) {
	entryDir := m.entryDir(kind, slug)
	if err := os.MkdirAll(entryDir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "creating backup directory")
	}

	base := at.Format(idLayout)
	for n := 0; ; n++ {
		id = base
		if n > 0 {
			id = base + "-" + strconv.Itoa(n)
		}
		dir = filepath.Join(entryDir, id)
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", errors.Wrap(err, "creating backup directory")
		}
	}
}

// List returns the entry's backups, newest first.
func (m *Manager) List(kind, slug string) ([]Manifest, error) {
	entries, err := os.ReadDir(m.entryDir(kind, slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(kind, slug, entry.Name())
		if err != nil {
			// half-written or foreign directory
			continue
		}
		manifests = append(manifests, *manifest)
	}
	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDs(b.ID, a.ID)
	})
	return manifests, nil
}

// Get loads one backup's manifest.
func (m *Manager) Get(kind, slug, id string) (*Manifest, error) {
	if id == "" {
		return nil, errors.New("backup ID is required")
	}

	data, err := os.ReadFile(filepath.Join(m.entryDir(kind, slug), id, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := fileutil.Decode(data, &manifest, fileutil.EncodingJSON); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	manifest.ID = id
	return &manifest, nil
}

// Restore copies a backup over its original path after checking its hash.
// An empty id restores the newest backup.
func (m *Manager) Restore(kind, slug, id string) (*Manifest, error) {
	var manifest *Manifest
	if id == "" {
		all, err := m.List(kind, slug)
		if err != nil {
			return nil, err
		}
		manifest = &all[0]
	} else {
		var err error
		if manifest, err = m.Get(kind, slug, id); err != nil {
			return nil, err
		}
	}

	src := filepath.Join(m.entryDir(kind, slug), manifest.ID, manifest.File.Name)
	hash, err := hashFile(src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup %s", manifest.ID)
	}
	if hash != manifest.File.SHA256Hash {
		return nil, errors.Wrapf(ErrBackupCorrupted, "backup %s", manifest.ID)
	}

	dst := manifest.File.OriginalPath
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", dst)
	}
	if _, _, err := copyFile(src, dst); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", dst)
	}
	if err := os.Chmod(dst, manifest.File.Mode); err != nil {
		return nil, errors.Wrapf(err, "setting permissions for %s", dst)
	}
	return manifest, nil
}

// Prune removes all but the newest keep backups of the entry.
func (m *Manager) Prune(kind, slug string, keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List(kind, slug)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		if err := os.RemoveAll(filepath.Join(m.entryDir(kind, slug), manifests[i].ID)); err != nil {
			return errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
	}
	return nil
}

func (m *Manager) entryDir(kind, slug string) string {
	return filepath.Join(m.rootDir, kind, slug)
}

// compareIDs orders IDs from the same second by their numeric suffix.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies src to dst, returning the SHA256 hash and the source mode.
func copyFile(src, dst string) (hash string, mode fs.FileMode, err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return "", 0, errors.Wrap(err, "stat source file")
	}
	mode = srcInfo.Mode().Perm()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, errors.Wrap(err, "creating destination file")
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(dstFile, h), srcFile); err != nil {
		dstFile.Close()
		return "", 0, errors.Wrap(err, "copying file")
	}
	if err := dstFile.Close(); err != nil {
		return "", 0, errors.Wrap(err, "closing destination file")
	}
	if err := os.Chmod(dst, mode); err != nil {
		return "", 0, errors.Wrap(err, "setting permissions")
	}

	return hex.EncodeToString(h.Sum(nil)), mode, nil
}
