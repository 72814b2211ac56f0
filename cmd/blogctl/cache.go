package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blog-backend/internal/shared"
)

func newCacheCmd(app *cliApp) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the page cache",
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached index page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.container(cmd.Context())
			if err != nil {
				return err
			}

			n, err := c.Cache.DeletePattern(cmd.Context(), shared.CacheKeyIndexPage+"*")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached pages\n", n)
			return nil
		},
	})
	return cacheCmd
}
