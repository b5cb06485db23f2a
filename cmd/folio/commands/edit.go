package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/internal/backup"
	"github.com/nahidreza/folio/internal/editor"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/paths"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/pkg/fileutil"
	"github.com/nahidreza/folio/pkg/frontmatter"
)

type newOptions struct {
	draft  portfolio.Draft
	format string
	edit   bool
	force  bool
	// backups receives the previous file when force overwrites one.
	backups *backup.Manager
}

func newNewCmd(kind portfolio.Kind) *cobra.Command {
	var opts newOptions
	c := &cobra.Command{
		Use:   "new <slug>",
		Short: "Create an entry from a template",
		Long: `Create a Markdown file named after the slug with every front matter key
this kind understands, ready to fill in.`,
		Example: fmt.Sprintf(`  folio %[1]s new service-desk --title "Service Desk"
  folio %[1]s new service-desk --tech Go,Postgres --edit
  folio %[1]s new service-desk --format toml

  See Also:
    folio %[1]s edit - Open an entry in $EDITOR
    folio validate   - Check front matter`, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := sectionFor(cmd, kind)
			if err != nil {
				return err
			}
			opts.draft.Slug = args[0]
			opts.backups = backupManager()

			path, err := runNew(cmd.OutOrStdout(), sec, opts, time.Now())
			if err != nil {
				return err
			}
			if !opts.edit {
				return nil
			}
			return openEditor(cmd, sec, args[0], path)
		},
	}
	c.Flags().StringVar(&opts.draft.Title, "title", "", "Title (default: the slug)")
	c.Flags().StringVarP(&opts.draft.ShortDescription, "description", "d", "", "One-line description")
	c.Flags().StringSliceVar(&opts.draft.Tech, "tech", nil, "Comma-separated technologies")
	c.Flags().IntVar(&opts.draft.Year, "year", 0, "Year (default: this year)")
	c.Flags().StringVar(&opts.format, "format", "yaml", "Front matter format: yaml, toml")
	c.Flags().BoolVarP(&opts.edit, "edit", "e", false, "Open the new file in $EDITOR")
	c.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing entry")
	return c
}

// runNew writes the scaffold for opts.draft and returns its path.
func runNew(w io.Writer, sec portfolio.Section, opts newOptions, now time.Time) (string, error) {
	format := frontmatter.Format(opts.format)
	if format != frontmatter.FormatYAML && format != frontmatter.FormatTOML {
		return "", errors.NewUserError(errors.Newf("invalid format %q", opts.format), "Use --format yaml or toml")
	}

	slug := opts.draft.Slug
	path, err := sec.PathFor(slug)
	if err != nil {
		return "", errors.NewUserError(err, "Slugs are file names: no slashes and no leading dot")
	}

	existing, found, err := sec.Locate(slug)
	if err != nil {
		return "", errors.NewSystemError(err, "")
	}
	if found {
		if !opts.force {
			return "", errors.NewUserError(
				errors.Wrapf(errors.ErrExists, "%s/%s at %s", sec.Kind(), slug, existing),
				"Pass --force to overwrite, or: folio "+string(sec.Kind())+" edit "+slug)
		}
		path = existing
		if opts.backups != nil {
			manifest, err := opts.backups.Backup(string(sec.Kind()), slug, existing)
			if err != nil {
				return "", errors.NewSystemError(err, "Fix the backup directory or remove the entry by hand")
			}
			fmt.Fprintf(w, "Backed up the previous version as %s\n", manifest.ID)
		}
	}

	data, err := portfolio.Scaffold(sec.Kind(), opts.draft, format, now)
	if err != nil {
		return "", errors.NewSystemError(err, "")
	}
	if err := paths.EnsureDir(sec.Dir(), 0); err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "creating content directory"), "")
	}
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return "", errors.NewSystemError(err, "")
	}

	fmt.Fprintf(w, "%s Created %s/%s at %s\n", color.GreenString("✓"), sec.Kind(), slug, path)
	return path, nil
}

func newEditCmd(kind portfolio.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <slug>",
		Short: "Open an entry in $EDITOR",
		Long: `Open an entry's file in your editor: $FOLIO_EDITOR, $EDITOR or $VISUAL,
falling back to nano, then vi. The front matter is checked again when the
editor exits.`,
		Example: fmt.Sprintf(`  folio %[1]s edit service-desk
  FOLIO_EDITOR="code --wait" folio %[1]s edit service-desk`, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := sectionFor(cmd, kind)
			if err != nil {
				return err
			}
			path, found, err := sec.Locate(args[0])
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			if !found {
				return errors.NewUserError(
					errors.Wrapf(errors.ErrNotFound, "%s %q", kind, args[0]),
					"Create it with: folio "+string(kind)+" new "+args[0])
			}
			return openEditor(cmd, sec, args[0], path)
		},
	}
}

// openEditor edits path, then reports front matter the edit broke.
func openEditor(cmd *cobra.Command, sec portfolio.Section, slug, path string) error {
	ed := editor.New()
	ed.Stdin = cmd.InOrStdin()
	ed.Stdout = cmd.OutOrStdout()
	ed.Stderr = cmd.ErrOrStderr()

	if err := ed.Open(cmd.Context(), path); err != nil {
		return errors.NewSystemError(err, "Set $FOLIO_EDITOR or $EDITOR")
	}

	if _, _, err := sec.Document(slug); err != nil {
		if errors.Is(err, frontmatter.ErrInvalidFrontmatter) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.YellowString("Warning:"), err)
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s/%s is left out of listings until this is fixed\n", sec.Kind(), slug)
			return nil
		}
		return errors.NewSystemError(err, "")
	}
	return nil
}
