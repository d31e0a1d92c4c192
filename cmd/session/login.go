package session

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewLoginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}

			user, err := env.Client.Login(cmd.Context(), api.LoginRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			id := session.Identity{
				Username:          user.Username,
				Role:              authorize.Role(user.Role),
				FirstLogin:        user.FirstLogin,
				IsProfileComplete: user.IsProfileComplete,
			}
			if err := env.Store.Save(id); err != nil {
				return fmt.Errorf("persist session: %w", err)
			}

			fmt.Printf("Logged in as %s (%s)\n", id.Username, id.Role)
			if user.FirstLogin {
				fmt.Println("First login: please change your password with 'medvault session reset-password'.")
			}
			if user.Message != "" {
				fmt.Println(user.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}
