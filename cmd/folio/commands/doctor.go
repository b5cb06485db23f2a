package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/internal/backup"
	"github.com/nahidreza/folio/internal/config"
	"github.com/nahidreza/folio/internal/doctor"
	"github.com/nahidreza/folio/internal/editor"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/paths"
	"github.com/nahidreza/folio/pkg/fileutil"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output results as JSON")
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false, "Show passed checks too")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "all")
	rootCmd.AddCommand(doctorCmd)
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("doctor found errors")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the folio setup",
	Long: `Check the environment folio runs in: the config file, both content
directories, where backups and logs go, the server address and the editor.

Exit codes:
  0 - All checks passed
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  folio doctor
  folio doctor --all
  folio doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := cfg
		if c == nil {
			c = config.Default()
		}

		runner := doctor.NewRunner(doctor.ConfigCheck{Path: config.ConfigFileUsed()})
		for _, sec := range openSite(cmd.Context(), nil).Sections() {
			runner.AddCheck(doctor.SectionCheck{Section: sec})
		}
		backupDir := c.Backup.Dir
		if backupDir == "" {
			backupDir = backup.DefaultDir()
		}
		runner.AddCheck(doctor.WritableDirCheck{Label: "backup-dir", Dir: backupDir})
		runner.AddCheck(doctor.WritableDirCheck{Label: "log-dir", Dir: filepath.Dir(paths.DefaultLogFile())})
		runner.AddCheck(doctor.ListenCheck{Addr: c.Server.Addr})
		runner.AddCheck(doctor.EditorCheck{Command: editor.Detect()})

		report := runner.Run()
		if err := writeDoctorReport(cmd.OutOrStdout(), report, doctorJSON, doctorAll); err != nil {
			return errors.NewSystemError(err, "")
		}

		switch report.Worst() {
		case doctor.SeverityError:
			return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
		case doctor.SeverityWarning:
			return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
		}
		return nil
	},
}

func writeDoctorReport(w io.Writer, report *doctor.Report, asJSON, all bool) error {
	if asJSON {
		data, err := fileutil.Encode(report, fileutil.EncodingJSON)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	floor := doctor.SeverityWarning
	if all {
		floor = doctor.SeverityPass
	}
	shown := report.AtLeast(floor)
	for _, result := range shown {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && result.Status >= doctor.SeverityWarning {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}
	if len(shown) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
