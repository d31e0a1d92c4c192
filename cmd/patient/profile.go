package patient

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your patient profile",
	}

	cmd.AddCommand(newProfileShowCommand())
	cmd.AddCommand(newProfileSetCommand())

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile and verification status",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourcePatientProfile, authorize.ActionRead); err != nil {
				return err
			}

			p, err := env.Client.GetPatientProfile(cmd.Context(), id.Username)
			if err != nil {
				if api.IsNotFound(err) {
					fmt.Println("No profile yet. Create one with 'medvault patient profile set --file profile.json'.")
					return nil
				}
				return err
			}

			fmt.Printf("%s %s  (%s)\n", p.FirstName, p.LastName, p.Status)
			if !p.IsProfileComplete {
				fmt.Println("Profile is incomplete; booking is blocked until it is complete and approved.")
			}
			return nil
		},
	}

	return cmd
}

func newProfileSetCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update your profile from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourcePatientProfile, authorize.ActionUpdate); err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var p api.PatientProfile
			if err := json.Unmarshal(raw, &p); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			existing, err := env.Client.GetPatientProfile(cmd.Context(), id.Username)
			switch {
			case err == nil:
				updated, err := env.Client.UpdatePatientProfile(cmd.Context(), existing.ID, p)
				if err != nil {
					return fmt.Errorf("update profile: %w", err)
				}
				fmt.Printf("Profile updated (%s).\n", updated.Status)
			case api.IsNotFound(err):
				created, err := env.Client.CreatePatientProfile(cmd.Context(), p)
				if err != nil {
					return fmt.Errorf("create profile: %w", err)
				}
				fmt.Printf("Profile created, pending verification (%s).\n", created.Status)
			default:
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the profile fields")
	cmd.MarkFlagRequired("file")

	return cmd
}
