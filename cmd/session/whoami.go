package session

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/session"
)

func NewWhoamiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}

			id, err := env.Identity()
			if errors.Is(err, session.ErrNoSession) {
				fmt.Println("Not logged in.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", id.Username, id.Role)
			if !id.IsProfileComplete {
				fmt.Println("Profile is incomplete.")
			}
			return nil
		},
	}

	return cmd
}
