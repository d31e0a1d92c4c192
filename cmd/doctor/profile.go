package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your doctor profile",
	}

	cmd.AddCommand(newProfileShowCommand())
	cmd.AddCommand(newProfileSetCommand())
	cmd.AddCommand(newProfileUploadCommand())

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile and verification status",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDoctorProfile, authorize.ActionRead); err != nil {
				return err
			}

			p, err := env.Client.GetDoctorProfile(cmd.Context(), id.Username)
			if err != nil {
				if api.IsNotFound(err) {
					fmt.Println("No profile yet. Create one with 'medvault doctor profile set --file profile.json'.")
					return nil
				}
				return err
			}

			fmt.Printf("%s %s  (%s)\n", p.FirstName, p.LastName, p.Status)
			fmt.Printf("Specialization: %s\n", strings.Join(p.Specialization, ", "))
			fmt.Printf("Department:     %s\n", p.Department)
			fmt.Printf("Experience:     %d years\n", p.YearsOfExperience)
			if !p.IsProfileComplete {
				fmt.Println("Profile is incomplete; some workflows are blocked until it is approved.")
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
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDoctorProfile, authorize.ActionUpdate); err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var p api.DoctorProfile
			if err := json.Unmarshal(raw, &p); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			existing, err := env.Client.GetDoctorProfile(cmd.Context(), id.Username)
			switch {
			case err == nil:
				updated, err := env.Client.UpdateDoctorProfile(cmd.Context(), existing.ID, p)
				if err != nil {
					return fmt.Errorf("update profile: %w", err)
				}
				fmt.Printf("Profile updated (%s).\n", updated.Status)
			case api.IsNotFound(err):
				created, err := env.Client.CreateDoctorProfile(cmd.Context(), p)
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

func newProfileUploadCommand() *cobra.Command {
	var field, file string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a verification document (degree, license, id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDoctorProfile, authorize.ActionUpdate); err != nil {
				return err
			}

			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			url, err := env.Client.UploadProfileDocument(cmd.Context(), field, filepath.Base(file), content)
			if err != nil {
				return fmt.Errorf("upload document: %w", err)
			}
			fmt.Printf("Uploaded to %s. Reference it from your profile JSON.\n", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "document field: medicalDegree, license, governmentId, affiliationProof")
	cmd.Flags().StringVar(&file, "file", "", "file to upload")
	cmd.MarkFlagRequired("field")
	cmd.MarkFlagRequired("file")

	return cmd
}
