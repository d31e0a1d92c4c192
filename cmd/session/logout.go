package session

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewLogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Store.Clear(); err != nil {
				return fmt.Errorf("clear session: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}

	return cmd
}
