package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"blog-backend/internal/domains/user/model"
)

func newUserCmd(app *cliApp) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var username string
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user with their posts, comments and subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.container(cmd.Context())
			if err != nil {
				return err
			}

			err = c.UserService.DeleteByUsername(cmd.Context(), username)
			if errors.Is(err, model.ErrUserIsFollowed) {
				return fmt.Errorf("%s still has followers, they must unfollow first: %w", username, err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s\n", username)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&username, "username", "", "username to delete")
	_ = deleteCmd.MarkFlagRequired("username")

	userCmd.AddCommand(deleteCmd)
	return userCmd
}
