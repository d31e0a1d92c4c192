package patient

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/internal/emergency"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewEmergencyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Raise and track emergency requests",
	}

	cmd.AddCommand(newEmergencyCreateCommand())
	cmd.AddCommand(newEmergencyListCommand())
	cmd.AddCommand(newEmergencyCompleteCommand())

	return cmd
}

func newEmergencyCreateCommand() *cobra.Command {
	var symptoms, urgency, location, notes, phone string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Raise an emergency request",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceEmergencyRequest, authorize.ActionCreate); err != nil {
				return err
			}

			svc := emergency.New(env.Client, id, env.Notifier, env.Cfg.Locale.DefaultRegion, nil)
			req, err := svc.Create(cmd.Context(), emergency.CreateRequest{
				Symptoms:     symptoms,
				UrgencyLevel: api.UrgencyLevel(strings.ToUpper(urgency)),
				Location:     location,
				Notes:        notes,
				ContactPhone: phone,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Emergency request %s submitted (%s urgency).\n", req.ID, req.UrgencyLevel)
			return nil
		},
	}

	cmd.Flags().StringVar(&symptoms, "symptoms", "", "what is happening")
	cmd.Flags().StringVar(&urgency, "urgency", "", "urgency level: HIGH, MEDIUM or LOW")
	cmd.Flags().StringVar(&location, "location", "", "where you are")
	cmd.Flags().StringVar(&notes, "notes", "", "additional context")
	cmd.Flags().StringVar(&phone, "phone", "", "callback phone number")
	cmd.MarkFlagRequired("symptoms")
	cmd.MarkFlagRequired("urgency")
	cmd.MarkFlagRequired("location")

	return cmd
}

func newEmergencyListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your emergency requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceEmergencyRequest, authorize.ActionList); err != nil {
				return err
			}

			svc := emergency.New(env.Client, id, env.Notifier, env.Cfg.Locale.DefaultRegion, nil)
			reqs, err := svc.MyRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				fmt.Println("No emergency requests.")
				return nil
			}
			for _, r := range reqs {
				line := fmt.Sprintf("%s  [%s]  %s  %s", r.ID, r.UrgencyLevel, r.Status, r.Symptoms)
				if r.DoctorName != "" {
					line += "  (Dr. " + r.DoctorName + ")"
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	return cmd
}

func newEmergencyCompleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <request-id>",
		Short: "Mark an emergency request as resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceEmergencyRequest, authorize.ActionComplete); err != nil {
				return err
			}

			svc := emergency.New(env.Client, id, env.Notifier, env.Cfg.Locale.DefaultRegion, nil)
			if err := svc.Complete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Emergency request completed.")
			return nil
		},
	}

	return cmd
}
