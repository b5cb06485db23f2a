// Package editor launches the user's preferred text editor on a content
// file.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/nahidreza/folio/internal/errors"
)

// EnvEditor overrides $EDITOR for folio only.
const EnvEditor = "FOLIO_EDITOR"

// Editor runs an editor command with the terminal attached.
type Editor struct {
	// Command is the program and its leading arguments, e.g. ["code", "--wait"].
	Command []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns the detected editor wired to the process's standard streams.
func New() *Editor {
	return &Editor{
		Command: strings.Fields(Detect()),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Open edits path and waits for the editor to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	if len(e.Command) == 0 {
		return errors.New("no editor configured")
	}

	args := append(e.Command[1:len(e.Command):len(e.Command)], path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", e.Command[0])
	}
	return nil
}

// Detect returns the editor command line.
// Fallback chain: $FOLIO_EDITOR → $EDITOR → $VISUAL → nano → vi
func Detect() string {
	for _, env := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		if editor := strings.TrimSpace(os.Getenv(env)); editor != "" {
			return editor
		}
	}

	// nano is friendlier for people who never picked an editor
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
