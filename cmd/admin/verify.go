package admin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/verification"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Approve or reject pending profiles",
	}

	cmd.AddCommand(newVerifyListCommand())
	cmd.AddCommand(newVerifyDecisionCommand("approve", true))
	cmd.AddCommand(newVerifyDecisionCommand("reject", false))

	return cmd
}

func parseKind(raw string) (verification.Kind, error) {
	switch raw {
	case "doctor", "doctors":
		return verification.KindDoctor, nil
	case "patient", "patients":
		return verification.KindPatient, nil
	default:
		return "", fmt.Errorf("kind must be doctor or patient, got %q", raw)
	}
}

func newVerifyListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <doctor|patient>",
		Short: "List profiles awaiting verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			env, id, err := adminEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceVerification, authorize.ActionList); err != nil {
				return err
			}

			svc := verification.New(env.Client, env.Notifier, nil)
			pending, err := svc.ListPending(cmd.Context(), kind)
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("Nothing pending.")
				return nil
			}
			for _, p := range pending {
				fmt.Printf("%s  %s\n", p.ID(), p.Name())
			}
			return nil
		},
	}

	return cmd
}

func newVerifyDecisionCommand(verb string, isVerified bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " <doctor|patient> <profile-id>",
		Short: verb + " a pending profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			env, id, err := adminEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceVerification, authorize.ActionVerify); err != nil {
				return err
			}

			svc := verification.New(env.Client, env.Notifier, nil)
			if err := svc.Verify(cmd.Context(), kind, args[1], isVerified); err != nil {
				return err
			}
			return nil
		},
	}

	return cmd
}
