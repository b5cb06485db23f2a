package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (unknown slug, bad flag, invalid content).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, network).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested entry was not found.
	ErrNotFound = crdb.New("entry not found")

	// ErrExists indicates an entry with the requested slug is already present.
	ErrExists = crdb.New("entry already exists")

	// ErrUnknownKind indicates a content kind that folio does not serve.
	ErrUnknownKind = crdb.New("unknown content kind")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrInvalidContent indicates content validation reported errors.
	ErrInvalidContent = crdb.New("invalid content")
)

// Re-exported helpers from github.com/cockroachdb/errors so callers only
// import this package.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
	Is    = crdb.Is
	As    = crdb.As
	Join  = crdb.Join
)

// ExitError carries the process exit code for a failed command, plus an
// optional hint printed under the error.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError wraps err with an exit code and no suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError marks err as the user's to fix (ExitUser).
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError marks err as an environment failure (ExitSystem).
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError is a user error pointing at the config file.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Check config.yaml or run: folio config path")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes Err to Is and As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from err. Errors that carry no ExitError
// map to ExitSystem; a nil error maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}

// Hint returns the suggestion of the outermost ExitError in err's chain.
func Hint(err error) string {
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}
