package project

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultExtension is the source extension collected when none is configured.
const DefaultExtension = ".nyan"

// Config is the content of nyanfmt.toml after defaults were applied.
type Config struct {
	Format FormatConfig `toml:"format"`
	Cache  CacheConfig  `toml:"cache"`

	// Path is the file the config came from; empty for defaults.
	Path string `toml:"-"`
}

// FormatConfig is the [format] table.
type FormatConfig struct {
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
	Jobs       int      `toml:"jobs"`
}

// CacheConfig is the [cache] table.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used without a project file.
func Default() Config {
	return Config{
		Format: FormatConfig{
			Extensions: []string{DefaultExtension},
		},
	}
}

// LoadConfig parses path. Missing keys keep their defaults; unknown keys are
// rejected so typos do not silently change behaviour.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds nyanfmt.toml above startDir and loads it. Without a file it
// returns Default().
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfigFile(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadConfig(path)
}

func (c *Config) normalize() error {
	if len(c.Format.Extensions) == 0 {
		c.Format.Extensions = []string{DefaultExtension}
	}
	for i, ext := range c.Format.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return fmt.Errorf("[format].extensions: empty extension")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Format.Extensions[i] = ext
	}
	if c.Format.Jobs < 0 {
		return fmt.Errorf("[format].jobs must be >= 0, got %d", c.Format.Jobs)
	}
	if c.Cache.Dir != "" && !filepath.IsAbs(c.Cache.Dir) && c.Path != "" {
		c.Cache.Dir = filepath.Join(filepath.Dir(c.Path), c.Cache.Dir)
	}
	return nil
}

// Jobs returns the worker count, resolving 0 to GOMAXPROCS.
func (c Config) Jobs() int {
	if c.Format.Jobs > 0 {
		return c.Format.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// HasExtension reports whether path has one of the configured extensions.
func (c Config) HasExtension(path string) bool {
	return slices.Contains(c.Format.Extensions, filepath.Ext(path))
}

// Excluded reports whether a directory with base name dir is skipped.
func (c Config) Excluded(dir string) bool {
	return slices.Contains(c.Format.Exclude, dir)
}

// CacheDir returns the configured cache directory or the user cache
// location ($XDG_CACHE_HOME/nyanfmt, then ~/.cache/nyanfmt).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "nyanfmt"), nil
}
