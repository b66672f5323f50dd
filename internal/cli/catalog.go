package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/catalog"
	"github.com/goosestudio/acficons/pkg/errors"
	"github.com/goosestudio/acficons/pkg/icon"
)

type catalogOptions struct {
	library string
	search  string
	jsVar   string
	output  string
}

func (c *CLI) catalogCommand() *cobra.Command {
	var opts catalogOptions

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the icons available in the bundled libraries",
		Long: `Build the icon catalog from the library metadata in the assets directory.
Every entry lists the reference to store for each of its styles.`,
		Example: `  acficons catalog --library ionicons --search arrow
  acficons catalog --json -o icons.json
  acficons catalog --js iconData -o mappings.js`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCatalog(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.library, "library", "l", "", "only list icons of this library")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "only list icons whose key or label contains this text")
	cmd.Flags().StringVar(&opts.jsVar, "js", "", "write a JavaScript variable declaration with this name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

func (c *CLI) runCatalog(cmd *cobra.Command, opts catalogOptions) error {
	out := cmd.OutOrStdout()

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	var lib icon.Library
	if opts.library != "" {
		if lib, err = icon.ParseLibrary(opts.library); err != nil {
			return err
		}
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	cat, err := catalog.Build(c.Fs, cfg.AssetsPath)
	if err != nil {
		return err
	}
	entries := cat.Filter(lib, opts.search)
	prog.done(fmt.Sprintf("Built catalog with %d icons", len(entries)))

	w := out
	if opts.output != "" {
		f, err := c.Fs.Create(opts.output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", opts.output)
		}
		defer f.Close()
		w = f
	}

	switch {
	case opts.jsVar != "":
		err = catalog.WriteScript(w, opts.jsVar, entries)
	case c.jsonOutput:
		err = writeJSON(w, entries)
	case opts.output != "":
		err = catalog.WriteJSON(w, entries)
	default:
		printCatalog(w, entries, cfg.AssetsPath)
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess(out, "Wrote %d icons", len(entries))
		printFile(out, opts.output)
	}
	return nil
}

func printCatalog(w io.Writer, entries []catalog.Entry, assetsPath string) {
	if len(entries) == 0 {
		printWarning(w, "No icons found")
		printNextStep(w, "Check the assets directory", "acficons config")
		printDetail(w, "Assets: %s", assetsPath)
		return
	}

	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d icons", len(entries))))
	for _, e := range entries {
		refs := make([]string, 0, len(e.Styles))
		for _, style := range e.Styles {
			if ref, ok := e.References[style]; ok {
				refs = append(refs, ref)
			}
		}
		fmt.Fprintf(w, "%s %s  %s\n",
			StyleHighlight.Render(e.Key),
			StyleValue.Render(e.Label),
			StyleDim.Render(strings.Join(refs, " ")))
	}
}
