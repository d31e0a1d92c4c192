package patient

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/app"
	"github.com/medvault/medvault-cli/internal/session"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewPatientCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient workflows: booking, emergencies, documents, reviews",
	}

	cmd.AddCommand(NewDoctorsCommand())
	cmd.AddCommand(NewBookCommand())
	cmd.AddCommand(NewAppointmentsCommand())
	cmd.AddCommand(NewEmergencyCommand())
	cmd.AddCommand(NewDocPermCommand())
	cmd.AddCommand(NewReviewsCommand())
	cmd.AddCommand(NewHealthCommand())
	cmd.AddCommand(NewProfileCommand())

	return cmd
}

// patientEnv builds the environment and requires a logged-in patient.
func patientEnv(cmd *cobra.Command) (*app.Env, session.Identity, error) {
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
	if id.Role != authorize.RolePatient {
		return nil, session.Identity{}, fmt.Errorf("command requires a patient session, current role is %s", id.Role)
	}
	return env, id, nil
}
