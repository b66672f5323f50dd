package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/icon"
)

type resolveResult struct {
	Reference string `json:"reference"`
	Format    string `json:"format"`
	Value     string `json:"value"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
}

func (c *CLI) resolveCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve <reference>...",
		Short: "Resolve stored icon references",
		Long: `Resolve stored icon references into a CSS class, a sprite URL, the URL or
path of an extracted SVG file, or the SVG markup itself.

Formats that need a standalone SVG extract it into the cache directory on
first use.`,
		Example: `  acficons resolve font-awesome:fa-home:fas
  acficons resolve --format svg_path ionicons:add:ion-md-%
  acficons resolve --json -f svg_url elementor:eicon-star:`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (default from config): "+formatList())
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(formatList(), ", "), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, refs []string, formatFlag string) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := c.readConfig(cmd)
	if err != nil {
		return err
	}
	format := cfg.Format()
	if formatFlag != "" {
		format = icon.OutputFormat(formatFlag)
		if !format.Valid() {
			return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q, want one of %s", formatFlag, formatList())
		}
	}
	if format != icon.FormatClass {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	r := c.newResolver(cfg)
	results := make([]resolveResult, 0, len(refs))
	var firstErr error
	failed := 0
	for _, ref := range refs {
		res := resolveResult{Reference: ref, Format: string(format)}
		resolved, err := r.Resolve(ctx, ref, format)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			failed++
			res.Error = errors.UserMessage(err)
			res.Code = string(errors.GetCode(err))
		} else {
			res.Value = resolved.Value
		}
		results = append(results, res)
	}

	if c.jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Error != "" {
				if len(refs) > 1 {
					printError(errOut, "%s: %s", res.Reference, res.Error)
				}
				continue
			}
			fmt.Fprintln(out, res.Value)
		}
		if format.ExtractsFile() {
			printStats(errOut, c.stats.snapshot())
		}
	}

	switch {
	case failed == 0:
		return nil
	case len(refs) == 1:
		return firstErr
	default:
		return errors.New(errors.GetCode(firstErr), "%d of %d references could not be resolved", failed, len(refs))
	}
}

func formatList() string {
	formats := icon.OutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
