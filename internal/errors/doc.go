// Package errors holds folio's error conventions: sentinel errors, the
// ExitError type that maps a failure to a process exit code, and
// re-exports of github.com/cockroachdb/errors so the rest of the module
// imports a single errors package.
//
// Exit codes:
//
//   - ExitSuccess (0)
//   - ExitUser (1): bad input, unknown slug, invalid content or config
//   - ExitSystem (2): I/O, permissions, anything unexpected
//
// Commands return an ExitError; main passes ExitCode(err) to os.Exit:
//
//	return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "works %q", slug),
//		"List available slugs: folio works slugs")
package errors
