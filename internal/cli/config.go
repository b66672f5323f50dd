package cli

import (
	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/config"
)

func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging the config file, ACFICONS_* environment
variables and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.readConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.jsonOutput {
				return writeJSON(out, cfg)
			}

			printKeyValue(out, "config file", configSource(c.configPath))
			printKeyValue(out, "assets_path", cfg.AssetsPath)
			printKeyValue(out, "assets_url", StyleLink.Render(cfg.AssetsURL))
			printKeyValue(out, "cache_root", cfg.CacheRoot)
			printKeyValue(out, "cache_url", StyleLink.Render(cfg.CacheURL))
			printKeyValue(out, "return_format", string(cfg.Format()))

			if err := cfg.Validate(); err != nil {
				printWarning(out, "%v", err)
			}
			return nil
		},
	}
}

// configSource names the config file in effect, or why there is none.
func configSource(explicit string) string {
	if explicit != "" {
		return explicit
	}
	p, err := config.DefaultPath()
	if err != nil {
		return "(none: " + err.Error() + ")"
	}
	return p
}
