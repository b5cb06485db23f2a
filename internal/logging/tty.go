package logging

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorEnv overrides color detection: "always", "never" or "auto".
const ColorEnv = "FOLIO_COLOR"

// IsTTY reports whether stream is a terminal. Anything with an Fd method
// qualifies, so *os.File and its wrappers work.
func IsTTY(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colors should be written to w.
// FOLIO_COLOR wins; otherwise NO_COLOR and TERM=dumb disable color and w
// must be a terminal.
func SupportsColor(w io.Writer) bool {
	return colorEnabled(IsTTY(w))
}

func colorEnabled(tty bool) bool {
	switch strings.ToLower(os.Getenv(ColorEnv)) {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return tty && os.Getenv("TERM") != "dumb"
}
