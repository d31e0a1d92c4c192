package patient

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/profile"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewBookCommand() *cobra.Command {
	var doctorID, slotID, notes string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment in an available slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAppointment, authorize.ActionCreate); err != nil {
				return err
			}

			// Booking is gated on a complete, approved profile.
			profiles := profile.New(env.Client, env.Notifier, nil)
			snap, err := profiles.Resolve(cmd.Context(), &id)
			if err != nil {
				return err
			}
			if profiles.ShowProfileWarning(snap) {
				return fmt.Errorf("profile must be complete and approved before booking")
			}

			appt, err := env.Client.BookAppointment(cmd.Context(), api.BookAppointmentRequest{
				PatientID:  id.Username,
				DoctorID:   doctorID,
				TimeSlotID: slotID,
				Notes:      notes,
			})
			if err != nil {
				return fmt.Errorf("book appointment: %w", err)
			}
			fmt.Printf("Appointment %s booked for %s %s-%s (%s).\n", appt.ID, appt.Date, appt.TimeFrom, appt.TimeTo, appt.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&doctorID, "doctor", "", "doctor id")
	cmd.Flags().StringVar(&slotID, "slot", "", "time slot id")
	cmd.Flags().StringVar(&notes, "notes", "", "notes for the doctor")
	cmd.MarkFlagRequired("doctor")
	cmd.MarkFlagRequired("slot")

	return cmd
}
