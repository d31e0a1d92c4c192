package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/app"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Doctor workflows: slots, appointments, emergencies, prescriptions",
	}

	cmd.AddCommand(NewSlotsCommand())
	cmd.AddCommand(NewAppointmentsCommand())
	cmd.AddCommand(NewEmergencyCommand())
	cmd.AddCommand(NewPrescriptionsCommand())
	cmd.AddCommand(NewDocPermCommand())
	cmd.AddCommand(NewDashboardCommand())
	cmd.AddCommand(NewProfileCommand())

	return cmd
}

// cmdDeps pairs the environment with the resolved identity for subcommands
// that build their own service.
type cmdDeps struct {
	env *app.Env
	id  session.Identity
}

// doctorEnv builds the environment and requires a logged-in doctor.
func doctorEnv(cmd *cobra.Command) (*app.Env, session.Identity, error) {
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
	if id.Role != authorize.RoleDoctor {
		return nil, session.Identity{}, fmt.Errorf("command requires a doctor session, current role is %s", id.Role)
	}
	return env, id, nil
}
