package doctor

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/docperm"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewDocPermCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docperm",
		Short: "Request and use time-limited document access",
	}

	cmd.AddCommand(newDocPermRequestCommand())
	cmd.AddCommand(newDocPermAccessCommand())
	cmd.AddCommand(newDocPermFetchCommand())

	return cmd
}

func newDocPermRequestCommand() *cobra.Command {
	var appointmentID, documentID, message string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Ask the patient for access to a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDocumentPermission, authorize.ActionCreate); err != nil {
				return err
			}

			svc := docperm.New(env.Client, id, env.Notifier, nil, nil)
			req, err := svc.Request(cmd.Context(), appointmentID, documentID, message)
			if err != nil {
				return err
			}
			fmt.Printf("Permission request %s submitted (%s).\n", req.ID, req.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&appointmentID, "appointment", "", "appointment id")
	cmd.Flags().StringVar(&documentID, "document", "", "document id")
	cmd.Flags().StringVar(&message, "message", "", "note shown to the patient")
	cmd.MarkFlagRequired("appointment")
	cmd.MarkFlagRequired("document")

	return cmd
}

func newDocPermAccessCommand() *cobra.Command {
	var appointmentID string

	cmd := &cobra.Command{
		Use:   "access",
		Short: "List documents you currently have access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDocumentPermission, authorize.ActionRead); err != nil {
				return err
			}

			access, err := env.Client.GetDoctorDocumentAccess(cmd.Context(), appointmentID)
			if err != nil {
				return err
			}
			if len(access) == 0 {
				fmt.Println("No accessible documents.")
				return nil
			}
			for _, a := range access {
				fmt.Printf("%s  viewable=%v  expires %s (%s left)\n", a.DocumentID, a.CanView, a.ExpiresAt, docperm.FormatRemaining(a.TimeRemaining))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&appointmentID, "appointment", "", "appointment id")
	cmd.MarkFlagRequired("appointment")

	return cmd
}

func newDocPermFetchCommand() *cobra.Command {
	var appointmentID, out string

	cmd := &cobra.Command{
		Use:   "fetch <document-id>",
		Short: "Download a document under a live permission grant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDocumentPermission, authorize.ActionRead); err != nil {
				return err
			}

			svc := docperm.New(env.Client, id, env.Notifier, nil, nil)
			data, contentType, err := svc.FetchDocument(cmd.Context(), args[0], appointmentID)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("Saved %d bytes (%s) to %s.\n", len(data), contentType, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&appointmentID, "appointment", "", "appointment id the grant belongs to")
	cmd.Flags().StringVar(&out, "out", "document.bin", "output file path")
	cmd.MarkFlagRequired("appointment")

	return cmd
}
