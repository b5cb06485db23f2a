package commands

import (
	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/validator"
)

var validateFormat string

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "Output format: text, json")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every entry's front matter",
	Long: `Check every case study and project for problems that the site hides at
serve time: front matter that cannot be parsed, missing or malformed
metadata that falls back to defaults, bad links and unknown keys.

Exits non-zero when any entry has an error. Warnings do not fail the run.
Unknown keys are listed with -v.`,
	Example: `  folio validate
  folio validate --format json
  folio validate -v --content-dir ./site/content`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format := validator.Format(validateFormat)
		if format != validator.FormatText && format != validator.FormatJSON {
			return errors.NewUserError(errors.Newf("invalid format %q", validateFormat), "Use --format text or json")
		}

		result, err := validator.CheckSite(openSite(cmd.Context(), nil))
		if err != nil {
			return errors.NewSystemError(err, "")
		}

		if err := validator.NewReporter(cmd.OutOrStdout(), format, verbosity > 0).Report(result); err != nil {
			return errors.NewSystemError(err, "")
		}

		if result.HasErrors() {
			return errors.NewExitError(errors.Wrapf(errors.ErrInvalidContent, "%d error(s)", len(result.Errors())), errors.ExitUser)
		}
		return nil
	},
}
