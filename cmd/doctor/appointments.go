package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/appointment"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewAppointmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Review and progress booked appointments",
	}

	cmd.AddCommand(newAppointmentsListCommand())
	cmd.AddCommand(newAppointmentStatusCommand("approve", api.AppointmentApproved, authorize.ActionApprove))
	cmd.AddCommand(newAppointmentStatusCommand("reject", api.AppointmentRejected, authorize.ActionReject))
	cmd.AddCommand(newAppointmentStatusCommand("complete", api.AppointmentCompleted, authorize.ActionComplete))

	return cmd
}

func newAppointmentsListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your appointments, split into upcoming and past",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAppointment, authorize.ActionList); err != nil {
				return err
			}

			if all {
				// Raw listing includes pending/rejected entries the schedule
				// view filters out.
				appts, err := env.Client.GetDoctorAppointments(cmd.Context(), id.Username)
				if err != nil {
					return err
				}
				printAppointments("All", appts)
				return nil
			}

			agg := appointment.New(env.Client, id, env.Location, nil, nil)
			if err := agg.Refresh(cmd.Context()); err != nil {
				return err
			}
			snap := agg.Snapshot()

			if snap.Next != nil {
				fmt.Printf("Next: %s %s-%s with %s\n\n", snap.Next.Date, snap.Next.TimeFrom, snap.Next.TimeTo, snap.Next.PatientName)
			}
			printAppointments("Upcoming", snap.Upcoming)
			printAppointments("Past", snap.Past)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include pending and rejected appointments")

	return cmd
}

func newAppointmentStatusCommand(verb string, status api.AppointmentStatus, action authorize.Action) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " <appointment-id>",
		Short: verb + " an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAppointment, action); err != nil {
				return err
			}

			appt, err := env.Client.UpdateAppointmentStatus(cmd.Context(), args[0], status)
			if err != nil {
				return fmt.Errorf("%s appointment: %w", verb, err)
			}
			fmt.Printf("Appointment %s is now %s.\n", appt.ID, appt.Status)
			return nil
		},
	}

	return cmd
}

func printAppointments(header string, appts []api.Appointment) {
	fmt.Printf("%s (%d):\n", header, len(appts))
	for _, a := range appts {
		name := a.PatientName
		if name == "" {
			name = a.PatientID
		}
		fmt.Printf("  %s  %s %s-%s  %-9s  %s\n", a.ID, a.Date, a.TimeFrom, a.TimeTo, a.Status, name)
	}
}
