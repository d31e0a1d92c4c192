package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/emergency"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewEmergencyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Respond to emergency requests",
	}

	cmd.AddCommand(newEmergencyPendingCommand())
	cmd.AddCommand(newEmergencyAcceptCommand())
	cmd.AddCommand(newEmergencyRejectCommand())
	cmd.AddCommand(newEmergencyAvailabilityCommand())

	return cmd
}

func newEmergencySvc(cmd *cobra.Command) (emergency.Service, *cmdDeps, error) {
	env, id, err := doctorEnv(cmd)
	if err != nil {
		return nil, nil, err
	}
	svc := emergency.New(env.Client, id, env.Notifier, env.Cfg.Locale.DefaultRegion, nil)
	return svc, &cmdDeps{env: env, id: id}, nil
}

func newEmergencyPendingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List emergency requests awaiting a response",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, deps, err := newEmergencySvc(cmd)
			if err != nil {
				return err
			}
			if err := deps.env.Authorize(cmd.Context(), deps.id, authorize.ResourceEmergencyRequest, authorize.ActionList); err != nil {
				return err
			}

			reqs, err := svc.PendingRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				fmt.Println("No pending emergency requests.")
				return nil
			}
			for _, r := range reqs {
				fmt.Printf("%s  [%s]  %s  at %s\n    %s\n", r.ID, r.UrgencyLevel, r.PatientName, r.Location, r.Symptoms)
			}
			return nil
		},
	}

	return cmd
}

func newEmergencyAcceptCommand() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "accept <request-id>",
		Short: "Accept an emergency request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, deps, err := newEmergencySvc(cmd)
			if err != nil {
				return err
			}
			if err := deps.env.Authorize(cmd.Context(), deps.id, authorize.ResourceEmergencyRequest, authorize.ActionApprove); err != nil {
				return err
			}

			if err := svc.Accept(cmd.Context(), args[0], notes); err != nil {
				return err
			}
			fmt.Println("Emergency request accepted.")
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "instructions for the patient")

	return cmd
}

func newEmergencyRejectCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject an emergency request with a reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, deps, err := newEmergencySvc(cmd)
			if err != nil {
				return err
			}
			if err := deps.env.Authorize(cmd.Context(), deps.id, authorize.ResourceEmergencyRequest, authorize.ActionReject); err != nil {
				return err
			}

			if err := svc.Reject(cmd.Context(), args[0], emergency.RejectionReason{Text: reason}); err != nil {
				return err
			}
			fmt.Println("Emergency request rejected.")
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason shown to the patient")
	cmd.MarkFlagRequired("reason")

	return cmd
}

func newEmergencyAvailabilityCommand() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show or toggle your emergency availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, deps, err := newEmergencySvc(cmd)
			if err != nil {
				return err
			}

			if set == "" {
				if err := deps.env.Authorize(cmd.Context(), deps.id, authorize.ResourceAvailability, authorize.ActionRead); err != nil {
					return err
				}
				available, err := svc.Availability(cmd.Context())
				if err != nil {
					return err
				}
				if available {
					fmt.Println("Available for emergencies.")
				} else {
					fmt.Println("Not available for emergencies.")
				}
				return nil
			}

			if err := deps.env.Authorize(cmd.Context(), deps.id, authorize.ResourceAvailability, authorize.ActionUpdate); err != nil {
				return err
			}
			var target bool
			switch set {
			case "on":
				target = true
			case "off":
				target = false
			default:
				return fmt.Errorf("--set must be on or off, got %q", set)
			}
			if err := svc.SetAvailability(cmd.Context(), target); err != nil {
				return err
			}
			fmt.Printf("Availability set to %s.\n", set)
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "set availability: on or off")

	return cmd
}
