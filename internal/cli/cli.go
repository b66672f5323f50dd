// Package cli implements the acficons command-line interface.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/buildinfo"
	"github.com/goosestudio/acficons/pkg/cache"
	"github.com/goosestudio/acficons/pkg/config"
	"github.com/goosestudio/acficons/pkg/resolver"
	"github.com/goosestudio/acficons/pkg/sprite"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// flagEnv maps global flags onto the environment variables they override.
var flagEnv = map[string]string{
	"assets":     "ACFICONS_ASSETS_PATH",
	"assets-url": "ACFICONS_ASSETS_URL",
	"cache-dir":  "ACFICONS_CACHE_ROOT",
	"cache-url":  "ACFICONS_CACHE_URL",
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Fs     afero.Fs

	configPath string
	jsonOutput bool
	stats      *cacheStats
}

// New creates a new CLI instance on the host filesystem.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Fs:     afero.NewOsFs(),
		stats:  &cacheStats{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "acficons",
		Short: "acficons resolves icon picker references",
		Long: `acficons turns stored icon references (library:css:template) into CSS classes,
sprite URLs or standalone SVG files extracted from the bundled icon sprites.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.stats.register()
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/acficons/config.toml)")
	pf.String("assets", "", "directory holding the bundled sprites and metadata")
	pf.String("assets-url", "", "public URL of the assets directory")
	pf.String("cache-dir", "", "directory for extracted icons")
	pf.String("cache-url", "", "public URL of the cache directory")
	pf.BoolVar(&c.jsonOutput, "json", false, "print machine-readable JSON")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// readConfig layers the config file, the environment and the global flags
// without validating the result.
func (c *CLI) readConfig(cmd *cobra.Command) (config.Config, error) {
	environ := environMap(os.Environ())
	for name, key := range flagEnv {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			environ[key] = f.Value.String()
		}
	}
	return config.Read(config.Source{Fs: c.Fs, Path: c.configPath, Environment: environ})
}

// loadConfig is readConfig followed by validation.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := c.readConfig(cmd)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// =============================================================================
// Service Factories
// =============================================================================

func (c *CLI) newStore(cfg config.Config) *cache.Store {
	return cache.New(c.Fs, cfg.CacheRoot)
}

func (c *CLI) newExtractor(cfg config.Config) *sprite.Extractor {
	loader := sprite.NewFSLoader(c.Fs, cfg.AssetsPath)
	return sprite.NewExtractor(c.newStore(cfg), loader, c.Logger)
}

func (c *CLI) newResolver(cfg config.Config) *resolver.Resolver {
	ext := c.newExtractor(cfg)
	return resolver.New(resolver.Options{
		Extractor: ext,
		Cache:     ext.Cache,
		AssetsURL: cfg.AssetsURL,
		CacheURL:  cfg.CacheURL,
		Logger:    c.Logger,
	})
}
