// Package commands implements the CLI commands for folio.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/cmd"
	"github.com/nahidreza/folio/internal/config"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/logging"
	"github.com/nahidreza/folio/internal/paths"
	"github.com/nahidreza/folio/internal/portfolio"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// contentDir overrides content_dir from the config.
var contentDir string

// envFile holds the value of the --env-file flag.
var envFile string

// cfg is the configuration loaded before any subcommand runs.
var cfg *config.Config

// closeLog releases the log file opened by setupLogging, if any.
var closeLog = func() error { return nil }

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write JSON logs to this file (\"default\" for "+paths.DefaultLogFile()+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml or "+paths.ConfigDir()+"/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", "",
		"content root, overriding content_dir")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"dotenv file loaded before the config (ignored when missing)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("folio version {{.Version}}\n")

	// Errors are printed by Execute.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUserError(err, "Run '"+c.CommandPath()+" --help' for usage")
	})

	for _, kind := range portfolio.Kinds() {
		rootCmd.AddCommand(newKindCmd(kind))
	}
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Serve and inspect a Markdown portfolio",
	Long: `folio reads a portfolio from Markdown files with YAML or TOML front matter:
case studies under <content>/case-studies and projects under
<content>/projects, one file per entry named after its slug.

It lists and shows entries, lints their metadata, exports them as JSON or
YAML, and serves them as a read-only JSON API.`,
	Example: `  # List case studies, newest first
  folio works list --sort year

  # Show a project with its body rendered to HTML
  folio projects show folio-cli --html

  # Check every entry's front matter
  folio validate

  # Serve the API on :8080
  folio serve`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return loadConfig(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pick one of -q or -v")
	}

	format, ok := logging.ParseFormat(logFormat)
	if !ok {
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat), "Use --log-format text or json")
	}

	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	} else if verbosity == 0 {
		switch os.Getenv("FOLIO_DEBUG") {
		case "1", "true":
			level = slog.LevelDebug
		case "2":
			level = logging.LevelTrace
		}
	}

	var file io.Writer
	if logFile != "" {
		path := logFile
		if path == "default" {
			path = paths.DefaultLogFile()
			if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
				return errors.NewSystemError(errors.Wrap(err, "creating log directory"), "")
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		file = f
		closeLog = f.Close
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		File:   file,
	})
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads the dotenv file, then the config, then applies flag
// overrides.
func loadConfig(cmd *cobra.Command) error {
	logger := logging.FromContext(cmd.Context())

	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			logger.Debug("loaded environment file", "path", envFile)
		} else if !errors.Is(err, os.ErrNotExist) {
			return errors.NewUserError(errors.Wrapf(err, "loading %s", envFile), "Fix the file or pass --env-file \"\"")
		}
	}

	config.Init()
	loaded, err := config.Load(configPath)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if used := config.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "path", used)
	}

	if contentDir != "" {
		expanded, err := paths.ExpandHome(contentDir)
		if err != nil {
			return errors.NewConfigError(err)
		}
		loaded.ContentDir = expanded
	}

	cfg = loaded
	return nil
}

// openSite builds the site described by the loaded config. onSkip may be nil.
func openSite(ctx context.Context, onSkip func(portfolio.Kind, string, error)) *portfolio.Site {
	c := cfg
	if c == nil {
		c = config.Default()
	}
	return portfolio.Open(portfolio.Options{
		Name:         c.SiteName,
		ContentDir:   c.ContentDir,
		WorksDir:     c.WorksDir,
		ProjectsDir:  c.ProjectsDir,
		Extensions:   c.Extensions,
		MaxEntrySize: c.MaxEntrySize,
		Logger:       logging.FromContext(ctx),
		OnSkip:       onSkip,
	})
}

// Execute runs the root command, prints any error with its suggestion,
// and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}
	printError(rootCmd.ErrOrStderr(), err)
	return errors.ExitCode(err)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
	if hint := errors.Hint(err); hint != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), hint)
	}
}
