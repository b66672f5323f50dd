package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goosestudio/acficons/pkg/cache"
	"github.com/goosestudio/acficons/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage extracted icon files",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheListCommand())

	return cmd
}

// cacheStore opens the cache without requiring the rest of the config.
func (c *CLI) cacheStore(cmd *cobra.Command) (*cache.Store, error) {
	cfg, err := c.readConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.CacheRoot == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "cache_root is required")
	}
	return c.newStore(cfg), nil
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all extracted icons",
		Long: `Remove all extracted icons. They are extracted again from the sprites the
next time they are resolved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.cacheStore(cmd)
			if err != nil {
				return err
			}
			count, err := store.Clear()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "clear cache")
			}

			out := cmd.OutOrStdout()
			if count == 0 {
				printInfo(out, "Cache is empty")
				return nil
			}
			printSuccess(out, "Cleared %d cached icons", count)
			printDetail(out, "Directory: %s", store.Root())
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.cacheStore(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Root())
			return nil
		},
	}
}

type cacheEntry struct {
	Library  string    `json:"library"`
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

func (c *CLI) cacheListCommand() *cobra.Command {
	var library string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extracted icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.cacheStore(cmd)
			if err != nil {
				return err
			}
			entries, err := store.Entries()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "list cache")
			}

			listed := make([]cacheEntry, 0, len(entries))
			var total int64
			for _, e := range entries {
				if library != "" && e.Library != library {
					continue
				}
				listed = append(listed, cacheEntry{
					Library:  e.Library,
					Name:     e.Name,
					Path:     e.Path,
					Size:     e.Size,
					Modified: e.ModTime,
				})
				total += e.Size
			}

			out := cmd.OutOrStdout()
			if c.jsonOutput {
				return writeJSON(out, listed)
			}
			if len(listed) == 0 {
				printInfo(out, "Cache is empty")
				printNextStep(out, "Extract an icon", "acficons resolve -f svg_path <reference>")
				return nil
			}
			for _, e := range listed {
				fmt.Fprintf(out, "%s %s\n", StyleValue.Render(e.Library+"/"+e.Name), StyleDim.Render(fmt.Sprintf("%d B", e.Size)))
			}
			printDetail(out, "%d icons, %d bytes in %s", len(listed), total, store.Root())
			return nil
		},
	}

	cmd.Flags().StringVarP(&library, "library", "l", "", "only list icons of this library")
	return cmd
}
