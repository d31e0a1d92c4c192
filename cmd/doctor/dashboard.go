package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/dashboard"
)

func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the practice overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}

			svc := dashboard.New(env.Client, id, env.Location, nil, nil)
			stats, err := svc.Stats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Schedule: %d today, %d this week, %d this month\n", stats.TodayCount, stats.WeekCount, stats.MonthCount)
			fmt.Printf("Patients: %d unique, %d visits completed\n", stats.UniquePatients, stats.CompletedVisits)
			fmt.Printf("Reviews:  %.1f average over %d reviews, %.0f%% positive (%s)\n",
				stats.AverageRating, stats.TotalReviews, stats.PositivePercent, stats.Status)

			if len(stats.NextVisits) > 0 {
				fmt.Println("\nNext visits:")
				for _, a := range stats.NextVisits {
					name := a.PatientName
					if name == "" {
						name = a.PatientID
					}
					fmt.Printf("  %s %s-%s  %s\n", a.Date, a.TimeFrom, a.TimeTo, name)
				}
			}
			return nil
		},
	}

	return cmd
}
