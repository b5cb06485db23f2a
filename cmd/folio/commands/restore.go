package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/internal/backup"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
)

// backupManager builds the backup manager described by the loaded config.
func backupManager() *backup.Manager {
	var opts []backup.Option
	if cfg != nil {
		if cfg.Backup.Dir != "" {
			opts = append(opts, backup.WithBackupDir(cfg.Backup.Dir))
		}
		opts = append(opts, backup.WithRetentionCount(cfg.Backup.Retention))
	}
	return backup.NewManager(opts...)
}

func newRestoreCmd(kind portfolio.Kind) *cobra.Command {
	var (
		id   string
		list bool
	)
	c := &cobra.Command{
		Use:   "restore <slug>",
		Short: "Restore an entry from a backup",
		Long: `Restore an entry overwritten by 'new --force' from its most recent
backup, or from the backup named by --id. Use --list to see the backups.`,
		Example: fmt.Sprintf(`  folio %[1]s restore service-desk --list
  folio %[1]s restore service-desk
  folio %[1]s restore service-desk --id 20260123T100712`, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd.OutOrStdout(), backupManager(), kind, args[0], id, list)
		},
	}
	c.Flags().StringVar(&id, "id", "", "Backup to restore (default: newest)")
	c.Flags().BoolVarP(&list, "list", "l", false, "List backups instead of restoring")
	return c
}

func runRestore(w io.Writer, m *backup.Manager, kind portfolio.Kind, slug, id string, list bool) error {
	if list {
		manifests, err := m.List(string(kind), slug)
		if err != nil {
			return restoreError(err, kind, slug)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCREATED\tFILE")
		for _, mf := range manifests {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", mf.ID, mf.CreatedAt.Local().Format("2006-01-02 15:04:05"), mf.File.OriginalPath)
		}
		return tw.Flush()
	}

	manifest, err := m.Restore(string(kind), slug, id)
	if err != nil {
		return restoreError(err, kind, slug)
	}
	fmt.Fprintf(w, "%s Restored %s/%s from %s to %s\n", color.GreenString("✓"), kind, slug, manifest.ID, manifest.File.OriginalPath)
	return nil
}

func restoreError(err error, kind portfolio.Kind, slug string) error {
	switch {
	case errors.Is(err, backup.ErrNoBackupsFound):
		return errors.NewUserError(err, fmt.Sprintf("List backups with: folio %s restore %s --list", kind, slug))
	case errors.Is(err, backup.ErrBackupCorrupted):
		return errors.NewUserError(err, "Pick another backup with --id")
	default:
		return errors.NewSystemError(err, "")
	}
}
