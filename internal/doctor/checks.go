package doctor

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/pkg/frontmatter"
)

// ConfigCheck reports which config file was loaded.
type ConfigCheck struct {
	// Path is the file Load read; empty when only defaults apply.
	Path string
}

func (ConfigCheck) Name() string     { return "config-file" }
func (ConfigCheck) Category() string { return "config" }

func (c ConfigCheck) Run() *CheckResult {
	if c.Path == "" {
		return info("no config file found, using defaults and FOLIO_* variables", nil)
	}
	return pass("loaded "+c.Path, map[string]any{"path": c.Path})
}

// SectionCheck verifies a kind's directory and counts entries that listings
// would skip.
type SectionCheck struct {
	Section portfolio.Section
}

func (c SectionCheck) Name() string   { return string(c.Section.Kind()) + "-dir" }
func (SectionCheck) Category() string { return "content" }

func (c SectionCheck) Run() *CheckResult {
	dir := c.Section.Dir()
	details := map[string]any{"dir": dir}

	st, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return warn("directory does not exist; listings will be empty",
			fmt.Sprintf("Create %s or set content_dir", dir), details)
	case err != nil:
		return fail("cannot read directory: "+err.Error(), "Check permissions on "+dir, details)
	case !st.IsDir():
		return fail("not a directory", "Point content_dir at a directory", details)
	}

	slugs, err := c.Section.Slugs()
	if err != nil {
		return fail(err.Error(), "Check permissions on "+dir, details)
	}

	var broken []string
	for _, slug := range slugs {
		if _, _, err := c.Section.Document(slug); err != nil && errors.Is(err, frontmatter.ErrInvalidFrontmatter) {
			broken = append(broken, slug)
		}
	}
	details["entries"] = len(slugs)

	if len(broken) > 0 {
		details["invalid"] = broken
		return warn(fmt.Sprintf("%d of %d entries have unparseable front matter", len(broken), len(slugs)),
			"Run: folio validate", details)
	}
	if len(slugs) == 0 {
		return info("directory is empty", details)
	}
	return pass(fmt.Sprintf("%d entries", len(slugs)), details)
}

// WritableDirCheck verifies folio can create files under Dir, creating
// nothing itself. A missing directory passes when its nearest existing
// parent is writable.
type WritableDirCheck struct {
	Label string
	Dir   string
}

func (c WritableDirCheck) Name() string   { return c.Label }
func (WritableDirCheck) Category() string { return "storage" }

func (c WritableDirCheck) Run() *CheckResult {
	details := map[string]any{"dir": c.Dir}

	existing := c.Dir
	for {
		st, err := os.Stat(existing)
		if err == nil {
			if !st.IsDir() {
				return fail(existing+" is not a directory", "Choose another location", details)
			}
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fail(err.Error(), "Check permissions", details)
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return fail("no existing parent directory", "Choose another location", details)
		}
		existing = parent
	}

	probe, err := os.CreateTemp(existing, ".folio-doctor-*")
	if err != nil {
		return fail("not writable: "+existing, "Check permissions on "+existing, details)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return pass("writable", details)
}

// ListenCheck validates the server address.
type ListenCheck struct {
	Addr string
}

func (ListenCheck) Name() string     { return "listen-addr" }
func (ListenCheck) Category() string { return "server" }

func (c ListenCheck) Run() *CheckResult {
	details := map[string]any{"addr": c.Addr}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fail("invalid address: "+err.Error(), `Use host:port, e.g. ":8080"`, details)
	}
	return pass(c.Addr, details)
}

// EditorCheck confirms the configured editor can be found.
type EditorCheck struct {
	// Command is the editor command line, as editor.Detect returns it.
	Command string
}

func (EditorCheck) Name() string     { return "editor" }
func (EditorCheck) Category() string { return "tools" }

func (c EditorCheck) Run() *CheckResult {
	fields := strings.Fields(c.Command)
	if len(fields) == 0 {
		return warn("no editor configured", "Set $FOLIO_EDITOR or $EDITOR", nil)
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return warn(fields[0]+" not found in PATH", "Set $FOLIO_EDITOR or $EDITOR", map[string]any{"command": c.Command})
	}
	return pass(path, map[string]any{"command": c.Command})
}
