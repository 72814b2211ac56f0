package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blog-backend/internal/domains/post/model"
)

func newPostsCmd(app *cliApp) *cobra.Command {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Work with posts",
	}

	var out, author string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export posts (newest first) to an xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			c, err := app.container(ctx)
			if err != nil {
				return err
			}

			var filter model.Filter
			if author != "" {
				u, err := c.UserService.GetByUsername(ctx, author)
				if err != nil {
					return fmt.Errorf("author %q: %w", author, err)
				}
				filter.AuthorID = &u.ID
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := c.PostService.Export(ctx, filter, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d posts to %s\n", n, out)
			return f.Close()
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "posts.xlsx", "output file")
	exportCmd.Flags().StringVar(&author, "author", "", "only posts of this username")

	postsCmd.AddCommand(exportCmd)
	return postsCmd
}
