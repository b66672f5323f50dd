package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/icon"
	"github.com/goosestudio/acficons/pkg/preview"
)

type previewOptions struct {
	output string
	size   int
	tint   string
}

func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview <reference>",
		Short: "Render an icon to PNG",
		Long: `Extract the icon's standalone SVG (if not cached yet) and rasterize it to a
square PNG. The output defaults to <icon-id>.png in the current directory.`,
		Example: `  acficons preview font-awesome:fa-home:fas
  acficons preview --size 64 --tint "#3b82f6" -o home.png font-awesome:fa-home:fas`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <icon-id>.png)")
	cmd.Flags().IntVar(&opts.size, "size", preview.DefaultSize, "edge length in pixels")
	cmd.Flags().StringVar(&opts.tint, "tint", "", "recolour the icon (hex, rgb() or rgba())")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, reference string, opts previewOptions) error {
	ref, err := icon.ParseReference(reference)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := c.newResolver(cfg).Resolve(cmd.Context(), reference, icon.FormatSVGRaw)
	if err != nil {
		return err
	}
	data, err := preview.RenderPNG([]byte(res.Value), preview.Options{Size: opts.size, Tint: opts.tint})
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		id, err := ref.SymbolID()
		if err != nil {
			return err
		}
		path = id + ".png"
	}
	if err := afero.WriteFile(c.Fs, path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s", ref.CSSClass())
	printFile(out, path)
	return nil
}
