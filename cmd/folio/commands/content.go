package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nahidreza/folio/internal/cli/prompt"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/internal/render"
	"github.com/nahidreza/folio/pkg/fileutil"
)

// previewLength bounds the body shown by show without --full.
const previewLength = 400

// newKindCmd builds the noun command for one content kind, e.g.
// `folio works` with list, show and slugs beneath it.
func newKindCmd(kind portfolio.Kind) *cobra.Command {
	label := kindLabel(kind)
	c := &cobra.Command{
		Use:     string(kind),
		Aliases: []string{strings.TrimSuffix(string(kind), "s")},
		Short:   "Inspect " + label,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newListCmd(kind), newShowCmd(kind), newSlugsCmd(kind), newNewCmd(kind), newEditCmd(kind), newRestoreCmd(kind))
	return c
}

func kindLabel(kind portfolio.Kind) string {
	if kind == portfolio.KindWorks {
		return "case studies"
	}
	return string(kind)
}

// sectionFor resolves kind against the loaded site.
func sectionFor(cmd *cobra.Command, kind portfolio.Kind) (portfolio.Section, error) {
	sec, ok := openSite(cmd.Context(), nil).Section(kind)
	if !ok {
		return nil, errors.NewUserError(errors.Wrapf(errors.ErrUnknownKind, "%q", kind), "")
	}
	return sec, nil
}

type listOptions struct {
	byYear bool
	asJSON bool
	filter portfolio.Filter
}

func newListCmd(kind portfolio.Kind) *cobra.Command {
	var (
		opts   listOptions
		sortBy string
	)
	c := &cobra.Command{
		Use:   "list",
		Short: "List " + kindLabel(kind),
		Long: `List every entry's summary. Entries whose front matter cannot be parsed
are skipped; run 'folio validate' to see them.

--search matches slug, title, tech and description and ranks the results.`,
		Example: fmt.Sprintf(`  folio %[1]s list
  folio %[1]s list --sort year
  folio %[1]s list --search desk --tech go
  folio %[1]s list --json`, kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sortBy != "" && sortBy != "year" {
				return errors.NewUserError(errors.Newf("unsupported sort %q", sortBy), "Use --sort year")
			}
			opts.byYear = sortBy == "year"
			sec, err := sectionFor(cmd, kind)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), sec, opts)
		},
	}
	c.Flags().BoolVar(&opts.asJSON, "json", false, "Output in JSON format")
	c.Flags().StringVar(&sortBy, "sort", "", "Sort order: year (newest first)")
	c.Flags().StringVarP(&opts.filter.Query, "search", "s", "", "Only entries matching this text")
	c.Flags().StringVar(&opts.filter.Tech, "tech", "", "Only entries using this technology")
	return c
}

// runList writes the section's summaries to w.
func runList(w io.Writer, sec portfolio.Section, opts listOptions) error {
	items, err := sec.List()
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if opts.byYear {
		portfolio.SortByYear(items)
	}
	items = portfolio.Search(items, opts.filter)

	if opts.asJSON {
		return writeJSON(w, items)
	}

	if len(items) == 0 {
		if opts.filter != (portfolio.Filter{}) {
			fmt.Fprintf(w, "No %s match\n", kindLabel(sec.Kind()))
			return nil
		}
		fmt.Fprintf(w, "No %s found in %s\n", kindLabel(sec.Kind()), sec.Dir())
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tYEAR\tTECH")
	for _, item := range items {
		s := item.Base()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Slug, truncate(s.Title, 40), s.Year, truncate(strings.Join(s.Tech, ", "), 40))
	}
	return tw.Flush()
}

func newSlugsCmd(kind portfolio.Kind) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "slugs",
		Short: "Print the slug of every " + strings.TrimSuffix(kindLabel(kind), "s") + " file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sec, err := sectionFor(cmd, kind)
			if err != nil {
				return err
			}
			return runSlugs(cmd.OutOrStdout(), sec, asJSON)
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return c
}

func runSlugs(w io.Writer, sec portfolio.Section, asJSON bool) error {
	slugs, err := sec.Slugs()
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if asJSON {
		return writeJSON(w, slugs)
	}
	for _, slug := range slugs {
		fmt.Fprintln(w, slug)
	}
	return nil
}

type showOptions struct {
	asJSON bool
	html   bool
	full   bool
}

func newShowCmd(kind portfolio.Kind) *cobra.Command {
	var opts showOptions
	c := &cobra.Command{
		Use:   "show [slug]",
		Short: "Display one entry",
		Long: `Display an entry's metadata and body. Without a slug, pick one
interactively.`,
		Example: fmt.Sprintf(`  folio %[1]s show my-entry
  folio %[1]s show my-entry --full
  folio %[1]s show my-entry --html --json
  folio %[1]s show`, kind),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := sectionFor(cmd, kind)
			if err != nil {
				return err
			}

			var slug string
			if len(args) == 1 {
				slug = args[0]
			} else {
				slug, err = pickSlug(sec, prompt.NewPicker(cmd.InOrStdin(), cmd.OutOrStdout()))
				if err != nil {
					return err
				}
			}
			return runShow(cmd.OutOrStdout(), sec, slug, opts)
		},
	}
	c.Flags().BoolVar(&opts.asJSON, "json", false, "Output as JSON")
	c.Flags().BoolVar(&opts.html, "html", false, "Render the body to HTML")
	c.Flags().BoolVar(&opts.full, "full", false, "Show the complete body (default truncated)")
	return c
}

// pickSlug lets the user choose among the listed entries.
func pickSlug(sec portfolio.Section, picker prompt.Picker) (string, error) {
	items, err := sec.List()
	if err != nil {
		return "", errors.NewSystemError(err, "")
	}

	choices := make([]prompt.Item, len(items))
	for i, item := range items {
		s := item.Base()
		choices[i] = prompt.Item{
			Slug:    s.Slug,
			Title:   s.Title,
			Preview: fmt.Sprintf("%s\n\n%s\n\nTech: %s", s.Title, s.ShortDescription, strings.Join(s.Tech, ", ")),
		}
	}

	idx, err := picker.Pick(choices)
	if err != nil {
		if errors.Is(err, prompt.ErrNoItems) {
			return "", errors.NewUserError(errors.Newf("no %s in %s", kindLabel(sec.Kind()), sec.Dir()), "")
		}
		return "", errors.NewUserError(err, "Pass a slug: folio "+string(sec.Kind())+" show <slug>")
	}
	return choices[idx].Slug, nil
}

// showOutput is the JSON shape of show.
type showOutput struct {
	portfolio.Detail
	HTML    string           `json:"html,omitempty"`
	Outline []render.Heading `json:"outline,omitempty"`
}

func runShow(w io.Writer, sec portfolio.Section, slug string, opts showOptions) error {
	detail, ok, err := sec.Get(slug)
	if err != nil {
		return errors.NewUserError(err, "Run: folio validate")
	}
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "%s %q", sec.Kind(), slug),
			"List available slugs: folio "+string(sec.Kind())+" slugs")
	}

	out := showOutput{Detail: detail}
	if opts.html {
		doc, err := render.New().Render(detail.Content)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		out.HTML = doc.HTML
		out.Outline = doc.Outline
	}

	if opts.asJSON {
		return writeJSON(w, out)
	}

	s := detail.Frontmatter.Base()
	fmt.Fprintf(w, "%s\n", s.Title)
	fmt.Fprintf(w, "Slug: %s\n", s.Slug)
	if s.ShortDescription != "" {
		fmt.Fprintf(w, "Description: %s\n", s.ShortDescription)
	}
	if len(s.Tech) > 0 {
		fmt.Fprintf(w, "Tech: %s\n", strings.Join(s.Tech, ", "))
	}
	for _, field := range []struct{ name, value string }{
		{"Year", s.Year},
		{"Client", s.Client},
		{"Thumbnail", s.Thumbnail},
	} {
		if field.value != "" {
			fmt.Fprintf(w, "%s: %s\n", field.name, field.value)
		}
	}
	if p, ok := detail.Frontmatter.(portfolio.ProjectSummary); ok {
		if p.GitHub != "" {
			fmt.Fprintf(w, "GitHub: %s\n", p.GitHub)
		}
		if p.Live != "" {
			fmt.Fprintf(w, "Live: %s\n", p.Live)
		}
	}

	body := detail.Content
	if opts.html {
		body = out.HTML
	}
	if strings.TrimSpace(body) == "" {
		return nil
	}
	fmt.Fprintln(w)
	if r := []rune(body); !opts.full && len(r) > previewLength {
		fmt.Fprintln(w, strings.TrimRight(string(r[:previewLength]), "\n"))
		fmt.Fprintln(w, "[truncated, use --full for complete output]")
		return nil
	}
	fmt.Fprint(w, body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := fileutil.Encode(v, fileutil.EncodingJSON)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
