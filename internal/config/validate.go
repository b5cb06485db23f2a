package config

import (
	"strings"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a config version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidExtension indicates an extension without a leading dot.
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrInvalidSize indicates a negative size limit.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidServer indicates a bad server setting.
	ErrInvalidServer = errors.New("invalid server setting")

	// ErrInvalidBackup indicates a bad backup setting.
	ErrInvalidBackup = errors.New("invalid backup setting")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d", cfg.Version))
	}

	for _, f := range []struct {
		name, value string
	}{
		{"content_dir", cfg.ContentDir},
		{"works_dir", cfg.WorksDir},
		{"projects_dir", cfg.ProjectsDir},
	} {
		if _, err := paths.Clean(f.value); err != nil {
			errs = append(errs, &PathError{Field: f.name, Path: f.value, Err: ErrInvalidPath})
		}
	}

	if len(cfg.Extensions) == 0 {
		errs = append(errs, errors.Wrap(ErrInvalidExtension, "at least one extension is required"))
	}
	for _, ext := range cfg.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) {
			errs = append(errs, errors.Wrapf(ErrInvalidExtension, "extension %q", ext))
		}
	}

	if cfg.MaxEntrySize < 0 {
		errs = append(errs, errors.Wrap(ErrInvalidSize, "max_entry_size is negative"))
	}

	if cfg.Server.Addr == "" {
		errs = append(errs, errors.Wrap(ErrInvalidServer, "server.addr is empty"))
	}
	if cfg.Server.ReadTimeout < 0 {
		errs = append(errs, errors.Wrap(ErrInvalidServer, "server.read_timeout is negative"))
	}
	if cfg.Server.WriteTimeout < 0 {
		errs = append(errs, errors.Wrap(ErrInvalidServer, "server.write_timeout is negative"))
	}

	if cfg.Backup.Retention < 0 {
		errs = append(errs, errors.Wrap(ErrInvalidBackup, "backup.retention is negative"))
	}
	if strings.ContainsRune(cfg.Backup.Dir, '\x00') {
		errs = append(errs, &PathError{Field: "backup.dir", Path: cfg.Backup.Dir, Err: ErrInvalidPath})
	}

	return errs
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
