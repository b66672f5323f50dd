// Package config loads acficons settings.
//
// Settings are layered, later sources winning:
//
//  1. built-in defaults (cache under $XDG_CACHE_HOME/acficons)
//  2. a TOML file (--config, or ~/.config/acficons/config.toml if present)
//  3. ACFICONS_* environment variables
//
// Example config.toml:
//
//	assets_path   = "/var/www/wp-content/plugins/acf-icons/assets/dependencies"
//	assets_url    = "https://example.com/wp-content/plugins/acf-icons/assets/dependencies"
//	cache_root    = "/var/www/wp-content/uploads/acf-icons"
//	cache_url     = "https://example.com/wp-content/uploads/acf-icons"
//	return_format = "svg_url"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"

	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/icon"
)

// AppName is used for default directories.
const AppName = "acficons"

// Config holds the paths and URLs the resolver needs.
type Config struct {
	// AssetsPath is the read-only directory holding <library>/sprites/*.svg
	// and the icon metadata files.
	AssetsPath string `toml:"assets_path" json:"assets_path" env:"ACFICONS_ASSETS_PATH"`

	// AssetsURL is the public URL of AssetsPath (svg_sprite_url output).
	AssetsURL string `toml:"assets_url" json:"assets_url" env:"ACFICONS_ASSETS_URL"`

	// CacheRoot is the writable directory for extracted icons.
	CacheRoot string `toml:"cache_root" json:"cache_root" env:"ACFICONS_CACHE_ROOT"`

	// CacheURL is the public URL of CacheRoot (svg_url output).
	CacheURL string `toml:"cache_url" json:"cache_url" env:"ACFICONS_CACHE_URL"`

	// ReturnFormat is the output format used when none is requested.
	ReturnFormat string `toml:"return_format" json:"return_format" env:"ACFICONS_RETURN_FORMAT"`
}

// Source describes where configuration is read from.
type Source struct {
	Fs          afero.Fs          // nil means the host filesystem
	Path        string            // explicit config file; must exist when set
	Environment map[string]string // nil means the process environment
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{ReturnFormat: string(icon.FormatClass)}
	if dir, err := CacheDir(); err == nil {
		cfg.CacheRoot = dir
	}
	return cfg
}

// Load builds the configuration from defaults, the config file and the
// environment, then validates it.
func Load(src Source) (Config, error) {
	cfg, err := Read(src)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read layers the configuration like Load but skips validation, for
// commands that only need part of it.
func Read(src Source) (Config, error) {
	if src.Fs == nil {
		src.Fs = afero.NewOsFs()
	}
	cfg := Default()

	path, required := src.Path, true
	if path == "" {
		required = false
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := decodeFile(src.Fs, path, required, &cfg); err != nil {
			return Config{}, err
		}
	}

	opts := env.Options{Environment: src.Environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse env")
	}
	return cfg, nil
}

func decodeFile(fsys afero.Fs, path string, required bool, cfg *Config) error {
	data, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks required fields and URL shapes.
func (c Config) Validate() error {
	if c.AssetsPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "assets_path is required")
	}
	if c.CacheRoot == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache_root is required")
	}
	for name, u := range map[string]string{"assets_url": c.AssetsURL, "cache_url": c.CacheURL} {
		if u == "" {
			continue
		}
		if err := errors.ValidateURL(u); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s", name)
		}
	}
	if c.ReturnFormat != "" && !icon.OutputFormat(c.ReturnFormat).Valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown return_format %q", c.ReturnFormat)
	}
	return nil
}

// Format returns the configured default output format.
func (c Config) Format() icon.OutputFormat {
	return icon.ParseOutputFormat(c.ReturnFormat)
}

// CacheDir returns the default cache directory using the XDG standard
// (~/.cache/acficons/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// DefaultPath returns the default config file location
// (~/.config/acficons/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}
