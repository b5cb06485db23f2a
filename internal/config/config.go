// Package config provides configuration management for folio using Viper.
package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/paths"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_CONTENT_DIR.
const EnvPrefix = "FOLIO"

// Config represents the top-level configuration structure.
type Config struct {
	Version     int      `mapstructure:"version" yaml:"version"`
	SiteName    string   `mapstructure:"site_name" yaml:"site_name"`
	ContentDir  string   `mapstructure:"content_dir" yaml:"content_dir"`
	WorksDir    string   `mapstructure:"works_dir" yaml:"works_dir"`
	ProjectsDir string   `mapstructure:"projects_dir" yaml:"projects_dir"`
	Extensions  []string `mapstructure:"extensions" yaml:"extensions"`

	// MaxEntrySize caps one entry file in bytes.
	MaxEntrySize int64 `mapstructure:"max_entry_size" yaml:"max_entry_size"`

	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// ServerConfig configures `folio serve`.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	Metrics      bool          `mapstructure:"metrics" yaml:"metrics"`
}

// BackupConfig controls the copies folio keeps before overwriting an entry.
type BackupConfig struct {
	// Dir is the backup root; empty means <state>/folio/backups.
	Dir       string `mapstructure:"dir" yaml:"dir"`
	Retention int    `mapstructure:"retention" yaml:"retention"`
}

// Init resets Viper and installs folio's defaults, search paths and
// environment bindings. Call this once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("site_name", "")
	viper.SetDefault("content_dir", "content")
	viper.SetDefault("works_dir", "case-studies")
	viper.SetDefault("projects_dir", "projects")
	viper.SetDefault("extensions", []string{".md"})
	viper.SetDefault("max_entry_size", 1<<20)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_timeout", "5s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.metrics", true)
	viper.SetDefault("backup.dir", "")
	viper.SetDefault("backup.retention", 5)
}

// Load reads the configuration file and validates the result.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, it searches the default locations and
// falls back to defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults only
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "validating config")
	}

	if err := cfg.expand(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration Init installs, without reading files
// or the environment.
func Default() *Config {
	return &Config{
		Version:      1,
		ContentDir:   "content",
		WorksDir:     "case-studies",
		ProjectsDir:  "projects",
		Extensions:   []string{".md"},
		MaxEntrySize: 1 << 20,
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			Metrics:      true,
		},
		Backup: BackupConfig{
			Retention: 5,
		},
	}
}

// ConfigFileUsed returns the path of the file Load read, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

func (c *Config) expand() error {
	for _, p := range []*string{&c.ContentDir, &c.WorksDir, &c.ProjectsDir, &c.Backup.Dir} {
		expanded, err := paths.ExpandHome(*p)
		if err != nil {
			return errors.Wrap(err, "expanding config path")
		}
		*p = expanded
	}
	return nil
}
