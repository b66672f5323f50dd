package cli

import (
	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/icon"
)

func (c *CLI) extractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <library> <style> <icon-id>",
		Short: "Extract one icon from a sprite into the cache",
		Long: `Extract the <symbol> with the given id from <assets>/<library>/sprites/<style>.svg
and store it as a standalone SVG file under the cache directory. Existing
cache files are reused as-is.`,
		Example: `  acficons extract font-awesome solid fa-home
  acficons extract elementor eicons eicon-star`,
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var libs []string
			for _, l := range icon.Libraries() {
				libs = append(libs, l.String())
			}
			return libs, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			path, err := c.newExtractor(cfg).Extract(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.jsonOutput {
				return writeJSON(out, map[string]string{"path": path})
			}
			stats := c.stats.snapshot()
			if stats.Hits > 0 {
				printInfo(out, "%s is already cached", args[2])
			} else {
				printSuccess(out, "Extracted %s", args[2])
			}
			printFile(out, path)
			return nil
		},
	}
}
