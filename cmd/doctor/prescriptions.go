package doctor

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewPrescriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescriptions",
		Short: "Issue and review prescriptions",
	}

	cmd.AddCommand(newPrescriptionsCreateCommand())
	cmd.AddCommand(newPrescriptionsListCommand())

	return cmd
}

// parseItem turns "name|dose|frequency|duration|instructions" into a
// prescription item. Trailing fields may be omitted.
func parseItem(raw string) (api.PrescriptionItem, error) {
	parts := strings.Split(raw, "|")
	if strings.TrimSpace(parts[0]) == "" {
		return api.PrescriptionItem{}, fmt.Errorf("item %q has no medication name", raw)
	}
	item := api.PrescriptionItem{MedicationName: strings.TrimSpace(parts[0])}
	fields := []*string{&item.Dose, &item.Frequency, &item.Duration, &item.Instructions}
	for i, f := range fields {
		if len(parts) > i+1 {
			*f = strings.TrimSpace(parts[i+1])
		}
	}
	return item, nil
}

func newPrescriptionsCreateCommand() *cobra.Command {
	var appointmentID, patientID, notes string
	var rawItems []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a prescription for a completed appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourcePrescription, authorize.ActionCreate); err != nil {
				return err
			}

			var items []api.PrescriptionItem
			for _, raw := range rawItems {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			p, err := env.Client.CreatePrescription(cmd.Context(), api.CreatePrescriptionRequest{
				AppointmentID: appointmentID,
				DoctorID:      id.Username,
				PatientID:     patientID,
				Items:         items,
				Notes:         notes,
			})
			if err != nil {
				return fmt.Errorf("create prescription: %w", err)
			}
			fmt.Printf("Prescription %s issued with %d items.\n", p.ID, len(p.Items))
			return nil
		},
	}

	cmd.Flags().StringVar(&appointmentID, "appointment", "", "appointment id")
	cmd.Flags().StringVar(&patientID, "patient", "", "patient id")
	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "medication as name|dose|frequency|duration|instructions (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	cmd.MarkFlagRequired("appointment")
	cmd.MarkFlagRequired("patient")
	cmd.MarkFlagRequired("item")

	return cmd
}

func newPrescriptionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prescriptions you issued",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourcePrescription, authorize.ActionList); err != nil {
				return err
			}

			prescriptions, err := env.Client.GetDoctorPrescriptions(cmd.Context(), id.Username)
			if err != nil {
				return err
			}
			if len(prescriptions) == 0 {
				fmt.Println("No prescriptions.")
				return nil
			}
			for _, p := range prescriptions {
				fmt.Printf("%s  appointment %s  patient %s\n", p.ID, p.AppointmentID, p.PatientID)
				for _, item := range p.Items {
					fmt.Printf("    %s %s %s %s\n", item.MedicationName, item.Dose, item.Frequency, item.Duration)
				}
			}
			return nil
		},
	}

	return cmd
}
