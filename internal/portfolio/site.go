package portfolio

import (
	"log/slog"
	"path/filepath"

	"github.com/nahidreza/folio/internal/content"
)

// Listing is any kind's summary. Every listing carries the common Summary.
type Listing interface {
	Base() Summary
}

// Detail is a full entry: the summary under "frontmatter" and the verbatim
// Markdown body under "content".
type Detail struct {
	Frontmatter Listing `json:"frontmatter" yaml:"frontmatter"`
	Content     string  `json:"content" yaml:"content"`
}

// Section exposes one kind's content without its concrete summary type.
type Section interface {
	Kind() Kind
	Dir() string
	Slugs() ([]string, error)
	List() ([]Listing, error)
	Get(slug string) (Detail, bool, error)
	Document(slug string) (*content.Document, bool, error)
	// Locate finds the file behind slug without parsing it.
	Locate(slug string) (string, bool, error)
	// PathFor is where a new entry named slug would be written.
	PathFor(slug string) (string, error)
}

type storeSection[S Listing] struct {
	kind  Kind
	store *content.Store[S]
}

// NewSection adapts a typed store to a Section.
func NewSection[S Listing](kind Kind, store *content.Store[S]) Section {
	return &storeSection[S]{kind: kind, store: store}
}

func (s *storeSection[S]) Kind() Kind               { return s.kind }
func (s *storeSection[S]) Dir() string              { return s.store.Dir() }
func (s *storeSection[S]) Slugs() ([]string, error) { return s.store.Slugs() }

func (s *storeSection[S]) List() ([]Listing, error) {
	all, err := s.store.All()
	if err != nil {
		return nil, err
	}
	out := make([]Listing, len(all))
	for i, item := range all {
		out[i] = item
	}
	return out, nil
}

func (s *storeSection[S]) Get(slug string) (Detail, bool, error) {
	entry, ok, err := s.store.Get(slug)
	if err != nil || !ok {
		return Detail{}, false, err
	}
	return Detail{Frontmatter: entry.Summary, Content: entry.Content}, true, nil
}

func (s *storeSection[S]) Document(slug string) (*content.Document, bool, error) {
	return s.store.Document(slug)
}

func (s *storeSection[S]) Locate(slug string) (string, bool, error) { return s.store.Locate(slug) }
func (s *storeSection[S]) PathFor(slug string) (string, error)      { return s.store.PathFor(slug) }

// Options locates the content directories and tunes every store.
type Options struct {
	// Name is the site owner's name, used in page titles.
	Name string
	// ContentDir is the root holding one directory per kind.
	ContentDir string
	// WorksDir and ProjectsDir are relative to ContentDir unless absolute.
	WorksDir    string
	ProjectsDir string
	// Extensions overrides the recognized file extensions.
	Extensions []string
	// MaxEntrySize caps a single entry file in bytes; zero means 1MB.
	MaxEntrySize int64
	Logger       *slog.Logger
	// OnSkip observes entries left out of listings.
	OnSkip func(kind Kind, slug string, reason error)
}

// Site is the set of sections a portfolio serves.
type Site struct {
	name     string
	sections map[Kind]Section
}

// NewSite assembles a site from prebuilt sections.
func NewSite(name string, sections ...Section) *Site {
	s := &Site{name: name, sections: make(map[Kind]Section, len(sections))}
	for _, sec := range sections {
		s.sections[sec.Kind()] = sec
	}
	return s
}

// Open builds the works and projects sections described by opts.
func Open(opts Options) *Site {
	return NewSite(opts.Name,
		NewSection(KindWorks, NewWorkStore(resolveDir(opts.ContentDir, opts.WorksDir), storeOptions(KindWorks, opts)...)),
		NewSection(KindProjects, NewProjectStore(resolveDir(opts.ContentDir, opts.ProjectsDir), storeOptions(KindProjects, opts)...)),
	)
}

func storeOptions(kind Kind, opts Options) []content.Option {
	out := []content.Option{
		content.WithExtensions(opts.Extensions...),
		content.WithMaxSize(opts.MaxEntrySize),
	}
	if opts.Logger != nil {
		out = append(out, content.WithLogger(opts.Logger.With("kind", string(kind))))
	}
	if opts.OnSkip != nil {
		out = append(out, content.WithSkipHook(func(slug string, reason error) {
			opts.OnSkip(kind, slug, reason)
		}))
	}
	return out
}

func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// Name returns the site owner's name.
func (s *Site) Name() string {
	return s.name
}

// Section returns the section for kind.
func (s *Site) Section(kind Kind) (Section, bool) {
	sec, ok := s.sections[kind]
	return sec, ok
}

// Sections returns the configured sections in Kinds order.
func (s *Site) Sections() []Section {
	out := make([]Section, 0, len(s.sections))
	for _, k := range Kinds() {
		if sec, ok := s.sections[k]; ok {
			out = append(out, sec)
		}
	}
	return out
}
