package patient

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/docperm"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewDocPermCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docperm",
		Short: "Respond to and revoke document access requests",
	}

	cmd.AddCommand(newDocPermListCommand())
	cmd.AddCommand(newDocPermRespondCommand())
	cmd.AddCommand(newDocPermRevokeCommand())

	return cmd
}

func newDocPermListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List document permission requests from doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDocumentPermission, authorize.ActionList); err != nil {
				return err
			}

			svc := docperm.New(env.Client, id, env.Notifier, nil, nil)
			reqs, err := svc.MyRequests(cmd.Context())
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				fmt.Println("No permission requests.")
				return nil
			}

			now := time.Now()
			for _, r := range reqs {
				state := string(r.Status)
				if docperm.AccessGranted(r.Status, r.ExpiresAt, now) {
					state = "ACTIVE until " + r.ExpiresAt
				} else if docperm.IsExpired(r.Status, r.ExpiresAt, now) {
					state = "EXPIRED"
				}
				fmt.Printf("%s  document %s  %s\n", r.ID, r.DocumentID, state)
			}
			return nil
		},
	}

	return cmd
}

func newDocPermRespondCommand() *cobra.Command {
	var approve, reject bool
	var message string

	cmd := &cobra.Command{
		Use:   "respond <permission-id>",
		Short: "Approve or reject a pending permission request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if approve == reject {
				return fmt.Errorf("pass exactly one of --approve or --reject")
			}

			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDocumentPermission, authorize.ActionApprove); err != nil {
				return err
			}

			svc := docperm.New(env.Client, id, env.Notifier, nil, nil)
			req, err := svc.Respond(cmd.Context(), args[0], approve, message)
			if err != nil {
				return err
			}
			if approve {
				fmt.Printf("Access granted until %s.\n", req.ExpiresAt)
			} else {
				fmt.Println("Request rejected.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "grant time-limited access")
	cmd.Flags().BoolVar(&reject, "reject", false, "deny access")
	cmd.Flags().StringVar(&message, "message", "", "note shown to the doctor")

	return cmd
}

func newDocPermRevokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke <permission-id>",
		Short: "Withdraw a live access grant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDocumentPermission, authorize.ActionRevoke); err != nil {
				return err
			}

			svc := docperm.New(env.Client, id, env.Notifier, nil, nil)

			// Revocation is guarded on the request's current state, so find it
			// in the patient's list first.
			reqs, err := svc.MyRequests(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range reqs {
				if r.ID == args[0] {
					if err := svc.Revoke(cmd.Context(), r); err != nil {
						return err
					}
					fmt.Println("Access revoked.")
					return nil
				}
			}
			return fmt.Errorf("permission request %s not found", args[0])
		},
	}

	return cmd
}
