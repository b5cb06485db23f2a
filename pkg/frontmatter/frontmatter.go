package frontmatter

import (
	"bytes"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nahidreza/folio/internal/errors"
)

// Format identifies the encoding of a front matter block.
type Format string

const (
	// FormatNone means the content has no front matter block.
	FormatNone Format = ""
	// FormatYAML is a block delimited by "---" lines.
	FormatYAML Format = "yaml"
	// FormatTOML is a block delimited by "+++" lines.
	FormatTOML Format = "toml"
)

// ErrInvalidFrontmatter is returned when a front matter block exists but
// cannot be decoded.
var ErrInvalidFrontmatter = errors.New("invalid frontmatter")

var delimiters = []struct {
	marker string
	format Format
}{
	{"---", FormatYAML},
	{"+++", FormatTOML},
}

// Split separates content into its front matter block and body without
// decoding the block. When no complete block is present, format is
// FormatNone, header is nil and body is the full content.
func Split(content []byte) (format Format, header, body []byte) {
	first, rest, found := cutLine(content)
	if !found {
		return FormatNone, nil, content
	}

	var marker string
	for _, d := range delimiters {
		if string(trimLine(first)) == d.marker {
			marker, format = d.marker, d.format
			break
		}
	}
	if marker == "" {
		return FormatNone, nil, content
	}

	start := len(content) - len(rest)
	pos := start
	for {
		line, next, _ := cutLine(content[pos:])
		if string(trimLine(line)) == marker {
			return format, content[start:pos], next
		}
		if len(next) == 0 {
			break
		}
		pos = len(content) - len(next)
	}

	return FormatNone, nil, content
}

// Parse reads all content from r, decodes the front matter into matter and
// returns the body. Content without front matter leaves matter untouched and
// returns the full content as body.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading content")
	}

	format, header, body := Split(content)
	if err := Decode(format, header, matter); err != nil {
		return nil, err
	}
	return body, nil
}

// ParseFields decodes the front matter of data into a generic map. The map
// is nil when there is no front matter or the block is empty.
func ParseFields(data []byte) (map[string]any, []byte, error) {
	format, header, body := Split(data)

	var fields map[string]any
	if err := Decode(format, header, &fields); err != nil {
		return nil, nil, err
	}
	return fields, body, nil
}

// Decode unmarshals a header returned by Split into out. An empty header or
// FormatNone leaves out untouched.
func Decode(format Format, header []byte, out any) error {
	if len(bytes.TrimSpace(header)) == 0 {
		return nil
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(header, out)
	case FormatTOML:
		err = toml.Unmarshal(header, out)
	default:
		return nil
	}
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "decoding %s frontmatter", format), ErrInvalidFrontmatter)
	}
	return nil
}

// Encode serializes matter as a front matter block in format, followed by
// body. FormatNone yields body alone.
func Encode(format Format, matter any, body string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatNone:
	case FormatYAML:
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(matter); err != nil {
			return nil, errors.Wrap(err, "encoding yaml frontmatter")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding yaml frontmatter")
		}
		buf.WriteString("---\n")
	case FormatTOML:
		buf.WriteString("+++\n")
		if err := toml.NewEncoder(&buf).Encode(matter); err != nil {
			return nil, errors.Wrap(err, "encoding toml frontmatter")
		}
		buf.WriteString("+++\n")
	default:
		return nil, errors.Newf("unknown frontmatter format %q", format)
	}

	if body != "" {
		if format != FormatNone {
			buf.WriteString("\n")
		}
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}

// cutLine returns the first line of b without its terminator and the
// remainder after the terminator. found reports whether a newline was seen.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return line, rest, found
}

// trimLine drops a trailing carriage return and surrounding blanks.
func trimLine(line []byte) []byte {
	return bytes.TrimSpace(bytes.TrimSuffix(line, []byte("\r")))
}
