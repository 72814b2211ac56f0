package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"blog-backend/internal/domains/group/model"
	"blog-backend/internal/shared/forms"
)

func newGroupCmd(app *cliApp) *cobra.Command {
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Manage post groups",
	}

	var req model.CreateGroupRequest
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group (slug is generated from the title when omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.container(cmd.Context())
			if err != nil {
				return err
			}

			g, err := c.GroupService.Create(cmd.Context(), req)
			if err != nil {
				if fields, ok := forms.FieldErrors(err); ok {
					for field, msg := range fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created group %d /group/%s/\n", g.ID, g.Slug)
			return nil
		},
	}
	createCmd.Flags().StringVar(&req.Title, "title", "", "group title")
	createCmd.Flags().StringVar(&req.Slug, "slug", "", "url slug")
	createCmd.Flags().StringVar(&req.Description, "description", "", "group description")
	_ = createCmd.MarkFlagRequired("title")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List groups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.container(cmd.Context())
			if err != nil {
				return err
			}

			groups, err := c.GroupService.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSLUG\tTITLE")
			for _, g := range groups {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", g.ID, g.Slug, g.Title)
			}
			return tw.Flush()
		},
	}

	var slug string
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a group, its posts stay without a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.container(cmd.Context())
			if err != nil {
				return err
			}

			if err := c.GroupService.DeleteBySlug(cmd.Context(), slug); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted group %s\n", slug)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&slug, "slug", "", "slug of the group to delete")
	_ = deleteCmd.MarkFlagRequired("slug")

	groupCmd.AddCommand(createCmd, listCmd, deleteCmd)
	return groupCmd
}
