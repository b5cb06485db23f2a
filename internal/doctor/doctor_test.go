package doctor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidreza/folio/internal/portfolio"
)

type stubCheck struct {
	name   string
	status Severity
}

func (s stubCheck) Name() string      { return s.name }
func (s stubCheck) Category() string  { return "stub" }
func (s stubCheck) Run() *CheckResult { return &CheckResult{Status: s.status, Message: s.name} }

func TestRunner_Summary(t *testing.T) {
	r := NewRunner(stubCheck{"a", SeverityPass}, stubCheck{"b", SeverityWarning})
	r.AddCheck(stubCheck{"c", SeverityError})
	r.AddCheck(stubCheck{"d", SeverityInfo})
	r.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	report := r.Run()
	require.Len(t, report.Results, 4)
	assert.Equal(t, Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1}, report.Summary)
	assert.Equal(t, SeverityError, report.Worst())
	assert.Len(t, report.AtLeast(SeverityWarning), 2)
	assert.Len(t, report.AtLeast(SeverityPass), 4)
	assert.Equal(t, SeverityPass, (&Report{}).Worst())
	assert.Equal(t, "stub", report.Results[0].Category)
	assert.Equal(t, "b", report.Results[1].Name)

	data, err := json.Marshal(report.Results[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"c","category":"stub","status":"error","message":"c"}`, string(data))
}

func TestConfigCheck(t *testing.T) {
	assert.Equal(t, SeverityInfo, ConfigCheck{}.Run().Status)
	assert.Equal(t, SeverityPass, ConfigCheck{Path: "/etc/folio/config.yaml"}.Run().Status)
}

func TestSectionCheck(t *testing.T) {
	root := t.TempDir()
	works := filepath.Join(root, "works")
	require.NoError(t, os.MkdirAll(works, 0o755))

	sec := portfolio.NewSection(portfolio.KindWorks, portfolio.NewWorkStore(works))
	check := SectionCheck{Section: sec}
	assert.Equal(t, "works-dir", check.Name())

	res := check.Run()
	assert.Equal(t, SeverityInfo, res.Status)

	require.NoError(t, os.WriteFile(filepath.Join(works, "ok.md"), []byte("---\ntitle: OK\n---\n"), 0o644))
	res = check.Run()
	assert.Equal(t, SeverityPass, res.Status)
	assert.Equal(t, "1 entries", res.Message)

	require.NoError(t, os.WriteFile(filepath.Join(works, "bad.md"), []byte("---\ntitle: [x\n---\n"), 0o644))
	res = check.Run()
	assert.Equal(t, SeverityWarning, res.Status)
	assert.Equal(t, []string{"bad"}, res.Details["invalid"])
	assert.Equal(t, "Run: folio validate", res.FixHint)

	missing := portfolio.NewSection(portfolio.KindProjects, portfolio.NewProjectStore(filepath.Join(root, "nope")))
	assert.Equal(t, SeverityWarning, SectionCheck{Section: missing}.Run().Status)

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	notDir := portfolio.NewSection(portfolio.KindProjects, portfolio.NewProjectStore(file))
	assert.Equal(t, SeverityError, SectionCheck{Section: notDir}.Run().Status)
}

func TestWritableDirCheck(t *testing.T) {
	dir := t.TempDir()

	res := WritableDirCheck{Label: "backup-dir", Dir: filepath.Join(dir, "a", "b")}.Run()
	assert.Equal(t, SeverityPass, res.Status)
	_, err := os.Stat(filepath.Join(dir, "a"))
	assert.True(t, os.IsNotExist(err), "check must not create directories")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file is removed")

	if runtime.GOOS != "windows" && os.Geteuid() != 0 {
		ro := filepath.Join(dir, "ro")
		require.NoError(t, os.Mkdir(ro, 0o555))
		assert.Equal(t, SeverityError, WritableDirCheck{Label: "x", Dir: ro}.Run().Status)
	}
}

func TestListenCheck(t *testing.T) {
	assert.Equal(t, SeverityPass, ListenCheck{Addr: ":8080"}.Run().Status)
	assert.Equal(t, SeverityPass, ListenCheck{Addr: "127.0.0.1:0"}.Run().Status)
	assert.Equal(t, SeverityError, ListenCheck{Addr: "8080"}.Run().Status)
}

func TestEditorCheck(t *testing.T) {
	assert.Equal(t, SeverityWarning, EditorCheck{}.Run().Status)
	assert.Equal(t, SeverityWarning, EditorCheck{Command: "definitely-not-an-editor-xyz"}.Run().Status)

	if runtime.GOOS != "windows" {
		assert.Equal(t, SeverityPass, EditorCheck{Command: "sh -c"}.Run().Status)
	}
}
