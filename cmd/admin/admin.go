package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/app"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration: verification and account management",
	}

	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewAccountsCommand())

	return cmd
}

// adminEnv builds the environment and requires a logged-in admin.
func adminEnv(cmd *cobra.Command) (*app.Env, session.Identity, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, session.Identity{}, err
	}
	env, err := app.NewEnv(cfgPath)
	if err != nil {
		return nil, session.Identity{}, err
	}
	id, err := env.Identity()
	if err != nil {
		return nil, session.Identity{}, err
	}
	if id.Role != authorize.RoleAdmin {
		return nil, session.Identity{}, fmt.Errorf("command requires an admin session, current role is %s", id.Role)
	}
	return env, id, nil
}
