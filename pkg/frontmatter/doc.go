// Package frontmatter splits Markdown content files into a metadata header
// and a body.
//
// Two header conventions are recognized:
//
//   - YAML, delimited by lines containing only "---"
//   - TOML, delimited by lines containing only "+++"
//
// The opening delimiter must be the very first line of the file. Everything
// after the closing delimiter line is the body, returned byte for byte.
//
// # Basic Usage
//
//	type PageMeta struct {
//		Title string   `yaml:"title" toml:"title"`
//		Tags  []string `yaml:"tags" toml:"tags"`
//	}
//
//	var meta PageMeta
//	body, err := frontmatter.Parse(r, &meta)
//
// For loosely typed metadata, decode into a map:
//
//	fields, body, err := frontmatter.ParseFields(data)
//
// # Missing Headers
//
// Headers are optional. A file with no opening delimiter, or with an opening
// delimiter that is never closed, has no metadata and its whole content is
// the body. An empty header ("---" directly followed by "---") yields no
// metadata. Only a header that exists but cannot be decoded is an error,
// reported as [ErrInvalidFrontmatter].
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
