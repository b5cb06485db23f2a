// Package content reads entries from a content directory: one Markdown file
// per entry, named after its slug, with an optional front matter header.
//
// A [Store] is generic over the summary type it produces. The caller
// supplies a [NormalizeFunc] that turns raw front matter into that summary
// and applies defaults; the store owns directory listing, path safety,
// parsing and the best-effort collection semantics.
//
// Stores never cache and never write. Every call reads the directory again,
// so a Store is safe for concurrent use.
package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/pkg/fileutil"
	"github.com/nahidreza/folio/pkg/frontmatter"
)

// DefaultExtension is the only file extension recognized unless
// WithExtensions says otherwise.
const DefaultExtension = ".md"

// ErrVanished is reported to the skip hook when a file listed by Slugs is
// gone by the time it is read.
var ErrVanished = errors.New("entry vanished during listing")

// ErrInvalidSlug is returned by PathFor for a slug that cannot name a file.
var ErrInvalidSlug = errors.New("invalid slug")

// Document is a parsed but not yet normalized content file.
type Document struct {
	Slug   string
	Path   string
	Format frontmatter.Format
	Fields Fields
	Body   string
}

// Entry is a full record: the normalized summary plus the verbatim body.
type Entry[S any] struct {
	Summary S
	Content string
}

// NormalizeFunc builds a summary from a slug and its front matter.
// It must not fail: malformed values fall back to defaults.
type NormalizeFunc[S any] func(slug string, fields Fields) S

// SkipFunc observes entries that Slugs or All leave out, with the reason.
type SkipFunc func(slug string, reason error)

// Option configures a Store.
type Option func(*options)

type options struct {
	extensions []string
	maxSize    int64
	logger     *slog.Logger
	onSkip     SkipFunc
}

// WithExtensions sets the recognized file extensions, in lookup priority
// order. Extensions must include the leading dot.
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		if len(exts) > 0 {
			o.extensions = exts
		}
	}
}

// WithMaxSize caps the size of a single entry file in bytes. Zero keeps
// fileutil.DefaultMaxSize.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithLogger sets the logger used for skip and parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSkipHook registers fn to be called for every entry Slugs or All skips.
func WithSkipHook(fn SkipFunc) Option {
	return func(o *options) {
		o.onSkip = fn
	}
}

// Store reads one content directory.
type Store[S any] struct {
	dir       string
	normalize NormalizeFunc[S]
	opts      options
}

// NewStore creates a Store over dir.
func NewStore[S any](dir string, normalize NormalizeFunc[S], opts ...Option) *Store[S] {
	o := options{
		extensions: []string{DefaultExtension},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[S]{
		dir:       dir,
		normalize: normalize,
		opts:      o,
	}
}

// Dir returns the directory the store reads.
func (s *Store[S]) Dir() string {
	return s.dir
}

// Slugs lists the identifiers of all recognized files in the directory.
// Files over the size limit are left out and reported to the skip hook, so
// every listed slug loads. A missing directory yields an empty slice and no
// error.
func (s *Store[S]) Slugs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, "reading content directory %s", s.dir)
	}

	// The file Get reads for a slug is the one with the best ranked extension.
	type candidate struct {
		entry fs.DirEntry
		rank  int
	}
	order := make([]string, 0, len(entries))
	best := make(map[string]candidate, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		slug, rank, ok := s.slugFor(entry.Name())
		if !ok {
			continue
		}
		prev, seen := best[slug]
		if !seen {
			order = append(order, slug)
		}
		if !seen || rank < prev.rank {
			best[slug] = candidate{entry: entry, rank: rank}
		}
	}

	slugs := make([]string, 0, len(order))
	for _, slug := range order {
		if err := s.checkSize(best[slug].entry); err != nil {
			s.opts.logger.Warn("skipping oversized entry",
				"dir", s.dir,
				"slug", slug,
				"error", err)
			s.skip(slug, err)
			continue
		}
		slugs = append(slugs, slug)
	}

	return slugs, nil
}

// checkSize fails with fileutil.ErrFileTooLarge when entry exceeds the
// store's limit. Entries that cannot be stat'ed pass; Get reports them.
func (s *Store[S]) checkSize(entry fs.DirEntry) error {
	info, err := entry.Info()
	if err != nil {
		return nil
	}
	limit := s.opts.maxSize
	if limit <= 0 {
		limit = fileutil.DefaultMaxSize
	}
	if info.Size() > limit {
		return errors.Mark(
			errors.Newf("%s: %d bytes exceeds the %d byte limit", entry.Name(), info.Size(), limit),
			fileutil.ErrFileTooLarge)
	}
	return nil
}

// Locate returns the path of the file behind slug, trying each extension
// in priority order. It does not read the file, so entries with broken
// front matter are found too.
func (s *Store[S]) Locate(slug string) (path string, ok bool, err error) {
	if !ValidSlug(slug) {
		return "", false, nil
	}
	for _, ext := range s.opts.extensions {
		path := filepath.Join(s.dir, slug+ext)
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, true, nil
		case err == nil, errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", false, errors.Wrapf(err, "checking %s", path)
		}
	}
	return "", false, nil
}

// PathFor returns where a new entry for slug belongs: the store directory,
// the slug and the highest priority extension.
func (s *Store[S]) PathFor(slug string) (string, error) {
	if !ValidSlug(slug) {
		return "", errors.Wrapf(ErrInvalidSlug, "%q", slug)
	}
	return filepath.Join(s.dir, slug+s.opts.extensions[0]), nil
}

// Document reads and parses the file behind slug without normalizing it.
// ok is false when no file matches or the slug is not a safe file name.
// A header that decodes to something other than a mapping yields empty
// Fields; only syntax errors fail.
func (s *Store[S]) Document(slug string) (doc *Document, ok bool, err error) {
	if !ValidSlug(slug) {
		s.opts.logger.Debug("rejecting unsafe slug", "dir", s.dir, "slug", slug)
		return nil, false, nil
	}

	for _, ext := range s.opts.extensions {
		path := filepath.Join(s.dir, slug+ext)
		data, err := fileutil.ReadLimited(path, s.opts.maxSize)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, false, errors.Wrapf(err, "reading %s", path)
		}

		format, header, body := frontmatter.Split(data)
		var raw any
		if err := frontmatter.Decode(format, header, &raw); err != nil {
			return nil, false, errors.Wrapf(err, "parsing %s", path)
		}
		fields, isMap := raw.(map[string]any)
		if raw != nil && !isMap {
			s.opts.logger.Debug("ignoring front matter that is not a mapping",
				"dir", s.dir,
				"slug", slug,
				"type", fmt.Sprintf("%T", raw))
		}

		return &Document{
			Slug:   slug,
			Path:   path,
			Format: format,
			Fields: Fields(fields),
			Body:   string(body),
		}, true, nil
	}

	return nil, false, nil
}

// Get loads the full entry for slug. ok is false when there is no such
// entry; err is reserved for filesystem and front matter syntax failures.
func (s *Store[S]) Get(slug string) (entry Entry[S], ok bool, err error) {
	doc, ok, err := s.Document(slug)
	if err != nil || !ok {
		return Entry[S]{}, false, err
	}
	return Entry[S]{
		Summary: s.normalize(slug, doc.Fields),
		Content: doc.Body,
	}, true, nil
}

// All loads the summary of every entry, in Slugs order.
//
// Entries whose file disappears between listing and reading and entries
// whose front matter cannot be decoded are skipped and reported to the skip
// hook, as are files that grew past the size limit after listing. Filesystem failures abort the whole listing.
func (s *Store[S]) All() ([]S, error) {
	slugs, err := s.Slugs()
	if err != nil {
		return nil, err
	}

	summaries := make([]S, 0, len(slugs))
	for _, slug := range slugs {
		entry, ok, err := s.Get(slug)
		switch {
		case err != nil && errors.Is(err, frontmatter.ErrInvalidFrontmatter):
			s.opts.logger.Warn("skipping entry with invalid front matter",
				"dir", s.dir,
				"slug", slug,
				"error", err)
			s.skip(slug, err)
			continue
		case err != nil && errors.Is(err, fileutil.ErrFileTooLarge):
			s.opts.logger.Warn("skipping oversized entry",
				"dir", s.dir,
				"slug", slug,
				"error", err)
			s.skip(slug, err)
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "loading %q", slug)
		case !ok:
			s.opts.logger.Debug("skipping vanished entry", "dir", s.dir, "slug", slug)
			s.skip(slug, ErrVanished)
			continue
		}
		summaries = append(summaries, entry.Summary)
	}

	return summaries, nil
}

func (s *Store[S]) skip(slug string, reason error) {
	if s.opts.onSkip != nil {
		s.opts.onSkip(slug, reason)
	}
}

// slugFor maps a file name to its slug when the extension is recognized.
// rank is the extension's lookup priority, lower first.
func (s *Store[S]) slugFor(name string) (slug string, rank int, ok bool) {
	for i, ext := range s.opts.extensions {
		if !strings.HasSuffix(name, ext) {
			continue
		}
		slug := strings.TrimSuffix(name, ext)
		if !ValidSlug(slug) {
			return "", 0, false
		}
		return slug, i, true
	}
	return "", 0, false
}

// ValidSlug reports whether slug can name a file inside a content directory
// without escaping it: non-empty, no path separators, no NUL byte, and no
// leading dot (which also rules out "." and "..").
func ValidSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, ".") {
		return false
	}
	if strings.ContainsAny(slug, "/\\\x00") {
		return false
	}
	return filepath.Base(slug) == slug
}
