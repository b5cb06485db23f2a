// Package config loads folio's own settings: where the content lives, the
// site name used in page titles, and how `folio serve` listens.
//
// # Configuration File
//
// config.yaml is searched in the working directory, then in
// ~/.config/folio (or $FOLIO_CONFIG_DIR):
//
//	version: 1
//	site_name: Jane Doe
//	content_dir: content
//	works_dir: case-studies     # relative to content_dir
//	projects_dir: projects
//	extensions: [.md]
//	server:
//	  addr: ":8080"
//	  read_timeout: 5s
//	  write_timeout: 10s
//	  metrics: true
//
// Every key can be overridden from the environment with the FOLIO_ prefix,
// dots becoming underscores: FOLIO_CONTENT_DIR, FOLIO_SERVER_ADDR.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load(flagPath)
//
// Load validates the result; see [Validate].
package config
