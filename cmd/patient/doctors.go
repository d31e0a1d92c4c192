package patient

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/localdate"
)

func NewDoctorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Browse approved doctors and their availability",
	}

	cmd.AddCommand(newDoctorsListCommand())
	cmd.AddCommand(newDoctorsSlotsCommand())
	cmd.AddCommand(newDoctorsRatingCommand())

	return cmd
}

func newDoctorsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approved doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceDoctorProfile, authorize.ActionRead); err != nil {
				return err
			}

			doctors, err := env.Client.GetApprovedDoctors(cmd.Context())
			if err != nil {
				return err
			}
			if len(doctors) == 0 {
				fmt.Println("No approved doctors.")
				return nil
			}
			for _, d := range doctors {
				fmt.Printf("%s  %s %s  %s  %d yrs\n", d.ID, d.FirstName, d.LastName, strings.Join(d.Specialization, ", "), d.YearsOfExperience)
			}
			return nil
		},
	}

	return cmd
}

func newDoctorsSlotsCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "slots <doctor-id>",
		Short: "List a doctor's bookable slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceTimeSlot, authorize.ActionList); err != nil {
				return err
			}

			// No --date means today, in the configured display zone.
			if date == "" {
				date = localdate.Today(env.Location).String()
			}
			slots, err := env.Client.GetAvailableSlots(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println("No available slots.")
				return nil
			}
			for _, s := range slots {
				fmt.Printf("%s  %s %s-%s\n", s.ID, s.Date, s.TimeFrom, s.TimeTo)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")

	return cmd
}

func newDoctorsRatingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rating <doctor-id>",
		Short: "Show a doctor's rating and recent reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceReview, authorize.ActionList); err != nil {
				return err
			}

			rating, err := env.Client.GetDoctorRating(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%.1f average over %d reviews\n", rating.AverageRating, rating.TotalReviews)

			reviews, err := env.Client.GetDoctorReviews(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, r := range reviews {
				fmt.Printf("  [%d/5] %s: %s\n", r.Rating, r.PatientName, r.Comment)
			}
			return nil
		},
	}

	return cmd
}
