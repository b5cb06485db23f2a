// Package logging provides structured logging for the folio CLI and server
// using slog.
//
// Text output goes through [Handler], which colors levels and keys when the
// writer is a terminal. JSON output uses the standard library handler. A
// log file, when configured, receives JSON records alongside the console.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbose),
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Request handlers and commands recover it with [FromContext].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	store := content.NewStore(dir, normalize, content.WithLogger(logging.ForTest(t)))
package logging
