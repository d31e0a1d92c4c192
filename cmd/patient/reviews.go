package patient

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewReviewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Review completed appointments",
	}

	cmd.AddCommand(newReviewsCreateCommand())
	cmd.AddCommand(newReviewsListCommand())

	return cmd
}

func newReviewsCreateCommand() *cobra.Command {
	var appointmentID, doctorID, comment string
	var rating int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Leave a review for a completed appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rating < 1 || rating > 5 {
				return fmt.Errorf("rating must be 1-5, got %d", rating)
			}

			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceReview, authorize.ActionCreate); err != nil {
				return err
			}

			// One review per appointment, completed appointments only. Ask
			// before submitting so the error is friendly.
			canReview, err := env.Client.CanReviewAppointment(cmd.Context(), appointmentID)
			if err != nil {
				return err
			}
			if !canReview {
				return fmt.Errorf("appointment %s cannot be reviewed (not completed, or already reviewed)", appointmentID)
			}

			review, err := env.Client.CreateReview(cmd.Context(), api.CreateReviewRequest{
				AppointmentID: appointmentID,
				PatientID:     id.Username,
				DoctorID:      doctorID,
				Rating:        rating,
				Comment:       comment,
			})
			if err != nil {
				return fmt.Errorf("create review: %w", err)
			}
			fmt.Printf("Review %s submitted: %d/5.\n", review.ID, review.Rating)
			return nil
		},
	}

	cmd.Flags().StringVar(&appointmentID, "appointment", "", "completed appointment id")
	cmd.Flags().StringVar(&doctorID, "doctor", "", "doctor id")
	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "review text")
	cmd.MarkFlagRequired("appointment")
	cmd.MarkFlagRequired("doctor")
	cmd.MarkFlagRequired("rating")

	return cmd
}

func newReviewsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews you wrote",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := patientEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceReview, authorize.ActionList); err != nil {
				return err
			}

			reviews, err := env.Client.GetPatientReviews(cmd.Context(), id.Username)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				fmt.Println("No reviews.")
				return nil
			}
			for _, r := range reviews {
				fmt.Printf("[%d/5] Dr. %s: %s\n", r.Rating, r.DoctorName, r.Comment)
			}
			return nil
		},
	}

	return cmd
}
