package commands

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/cmd"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/logging"
	"github.com/nahidreza/folio/internal/paths"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/pkg/fileutil"
)

var (
	exportOut    string
	exportFormat string
	exportKinds  []string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json, yaml (default from the file extension)")
	exportCmd.Flags().StringSliceVar(&exportKinds, "kind", nil, "Kinds to export (default: all)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

// exportBundle is the document export writes.
type exportBundle struct {
	Site      string                           `json:"site,omitempty" yaml:"site,omitempty"`
	Generated time.Time                        `json:"generated" yaml:"generated"`
	Version   string                           `json:"version" yaml:"version"`
	Sections  map[portfolio.Kind][]exportEntry `json:"sections" yaml:"sections"`
}

type exportEntry struct {
	portfolio.Detail `yaml:",inline"`
	PageTitle        string `json:"pageTitle" yaml:"pageTitle"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every entry to a single JSON or YAML file",
	Long: `Write the full content of every entry, front matter and body, to one file.
Static site builds can consume it instead of reading the content directory.

Entries with unparseable front matter are skipped, exactly as in listings.
The file is replaced atomically.`,
	Example: `  folio export -o dist/content.json
  folio export -o content.yaml --kind works`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc, err := exportEncoding(exportFormat, exportOut)
		if err != nil {
			return err
		}

		kinds := portfolio.Kinds()
		if len(exportKinds) > 0 {
			kinds = kinds[:0]
			for _, name := range exportKinds {
				kind, ok := portfolio.ParseKind(name)
				if !ok {
					return errors.NewUserError(errors.Wrapf(errors.ErrUnknownKind, "%q", name), "Use --kind works or --kind projects")
				}
				kinds = append(kinds, kind)
			}
		}

		bundle, err := buildExport(openSite(cmd.Context(), nil), kinds, time.Now().UTC())
		if err != nil {
			return errors.NewSystemError(err, "")
		}

		if err := paths.EnsureDir(filepath.Dir(exportOut), 0); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
		}
		if err := fileutil.WriteEncoded(exportOut, bundle, enc); err != nil {
			return errors.NewSystemError(err, "")
		}

		logging.FromContext(cmd.Context()).Info("exported content", "path", exportOut, "format", string(enc))
		return nil
	},
}

func exportEncoding(format, out string) (fileutil.Encoding, error) {
	if format == "" {
		switch filepath.Ext(out) {
		case ".yaml", ".yml":
			return fileutil.EncodingYAML, nil
		default:
			return fileutil.EncodingJSON, nil
		}
	}
	switch enc := fileutil.Encoding(format); enc {
	case fileutil.EncodingJSON, fileutil.EncodingYAML:
		return enc, nil
	default:
		return "", errors.NewUserError(errors.Wrapf(fileutil.ErrUnknownEncoding, "%q", format), "Use --format json or yaml")
	}
}

// buildExport loads the full entry for every listed summary of each kind.
func buildExport(site *portfolio.Site, kinds []portfolio.Kind, now time.Time) (*exportBundle, error) {
	bundle := &exportBundle{
		Site:      site.Name(),
		Generated: now,
		Version:   cmd.Version,
		Sections:  make(map[portfolio.Kind][]exportEntry, len(kinds)),
	}

	for _, kind := range kinds {
		sec, ok := site.Section(kind)
		if !ok {
			continue
		}
		items, err := sec.List()
		if err != nil {
			return nil, err
		}
		portfolio.SortByYear(items)

		entries := make([]exportEntry, 0, len(items))
		for _, item := range items {
			slug := item.Base().Slug
			detail, ok, err := sec.Get(slug)
			if err != nil {
				return nil, errors.Wrapf(err, "loading %s/%s", kind, slug)
			}
			if !ok {
				continue
			}
			entries = append(entries, exportEntry{
				Detail:    detail,
				PageTitle: portfolio.PageTitle(site.Name(), kind, item.Base().Title),
			})
		}
		bundle.Sections[kind] = entries
	}

	return bundle, nil
}
