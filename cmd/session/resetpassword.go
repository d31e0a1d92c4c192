package session

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
)

func NewResetPasswordCommand() *cobra.Command {
	var username, oldPassword, newPassword string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Change an account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}

			// Default to the logged-in account when no username is given.
			if username == "" {
				id, err := env.Identity()
				if err != nil {
					return fmt.Errorf("no username given and no session: %w", err)
				}
				username = id.Username
			}

			err = env.Client.ResetPassword(cmd.Context(), api.ResetPasswordRequest{
				Username:    username,
				OldPassword: oldPassword,
				NewPassword: newPassword,
			})
			if err != nil {
				return fmt.Errorf("reset password: %w", err)
			}

			fmt.Println("Password updated.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username (defaults to the session)")
	cmd.Flags().StringVar(&oldPassword, "old", "", "current password")
	cmd.Flags().StringVar(&newPassword, "new", "", "new password")
	cmd.MarkFlagRequired("old")
	cmd.MarkFlagRequired("new")

	return cmd
}
