package session

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewRegisterCommand() *cobra.Command {
	var username, password, email, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new doctor or patient account",
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized := authorize.Role(strings.ToUpper(role))
			if normalized != authorize.RoleDoctor && normalized != authorize.RolePatient {
				return fmt.Errorf("role must be DOCTOR or PATIENT, got %q", role)
			}

			env, err := newEnv(cmd)
			if err != nil {
				return err
			}

			user, err := env.Client.Register(cmd.Context(), api.RegisterRequest{
				Username: username,
				Password: password,
				Email:    email,
				Role:     string(normalized),
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Printf("Account %s created with role %s. Log in to continue.\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&email, "email", "e", "", "contact email")
	cmd.Flags().StringVarP(&role, "role", "r", "", "account role: DOCTOR or PATIENT")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("role")

	return cmd
}
