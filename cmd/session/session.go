package session

import (
	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/app"
)

func NewSessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Login, logout and account commands",
	}

	cmd.AddCommand(NewLoginCommand())
	cmd.AddCommand(NewRegisterCommand())
	cmd.AddCommand(NewLogoutCommand())
	cmd.AddCommand(NewWhoamiCommand())
	cmd.AddCommand(NewResetPasswordCommand())

	return cmd
}

func newEnv(cmd *cobra.Command) (*app.Env, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	return app.NewEnv(cfgPath)
}
