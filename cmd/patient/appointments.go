package patient

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
		Short: "View, reschedule and cancel your appointments",
	}

	cmd.AddCommand(newAppointmentsListCommand())
	cmd.AddCommand(newAppointmentsRescheduleCommand())
	cmd.AddCommand(newAppointmentsCancelCommand())

	return cmd
}

func newAppointmentsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your appointments, split into upcoming and past",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAppointment, authorize.ActionList); err != nil {
				return err
			}

			agg := appointment.New(env.Client, id, env.Location, nil, nil)
			if err := agg.Refresh(cmd.Context()); err != nil {
				return err
			}
			snap := agg.Snapshot()

			if snap.Next != nil {
				fmt.Printf("Next: %s %s-%s with Dr. %s\n\n", snap.Next.Date, snap.Next.TimeFrom, snap.Next.TimeTo, snap.Next.DoctorName)
			}
			printAppointments("Upcoming", snap.Upcoming)
			printAppointments("Past", snap.Past)
			return nil
		},
	}

	return cmd
}

func printAppointments(header string, appts []api.Appointment) {
	fmt.Printf("%s (%d):\n", header, len(appts))
	for _, a := range appts {
		name := a.DoctorName
		if name == "" {
			name = a.DoctorID
		}
		fmt.Printf("  %s  %s %s-%s  %-9s  %s\n", a.ID, a.Date, a.TimeFrom, a.TimeTo, a.Status, name)
	}
}

func newAppointmentsRescheduleCommand() *cobra.Command {
	var slotID string

	cmd := &cobra.Command{
		Use:   "reschedule <appointment-id>",
		Short: "Move an appointment to a new slot",
		Long: `Move an appointment to a new slot with the same doctor.

The server allows at most one reschedule per appointment, and only up to two
hours before the original start time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAppointment, authorize.ActionUpdate); err != nil {
				return err
			}

			appt, err := env.Client.RescheduleAppointment(cmd.Context(), args[0], api.RescheduleRequest{TimeSlotID: slotID})
			if err != nil {
				return fmt.Errorf("reschedule: %w", err)
			}
			fmt.Printf("Appointment moved to %s %s-%s.\n", appt.Date, appt.TimeFrom, appt.TimeTo)
			return nil
		},
	}

	cmd.Flags().StringVar(&slotID, "slot", "", "new time slot id")
	cmd.MarkFlagRequired("slot")

	return cmd
}

func newAppointmentsCancelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAppointment, authorize.ActionDelete); err != nil {
				return err
			}

			if err := env.Client.CancelAppointment(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("cancel appointment: %w", err)
			}
			fmt.Println("Appointment cancelled.")
			return nil
		},
	}

	return cmd
}
