package doctor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/profile"
	"github.com/medvault/medvault-cli/internal/slot"
	"github.com/medvault/medvault-cli/pkg/authorize"
)

func NewSlotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Manage availability time slots",
	}

	cmd.AddCommand(newSlotsCreateCommand())
	cmd.AddCommand(newSlotsListCommand())
	cmd.AddCommand(newSlotsDeleteCommand())

	return cmd
}

func newSlotsCreateCommand() *cobra.Command {
	var date, timeFrom, timeTo, timezone string
	var duration int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Split an availability window into bookable slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceTimeSlot, authorize.ActionCreate); err != nil {
				return err
			}

			if timezone == "" {
				timezone = env.Cfg.Locale.Timezone
			}
			if timezone == "" {
				timezone = env.Location.String()
			}

			profiles := profile.New(env.Client, env.Notifier, nil)
			svc := slot.New(env.Client, profiles, id, env.Notifier, nil, nil)

			slots, err := svc.CreateTimeSlots(cmd.Context(), slot.CreateSlotsRequest{
				Date:     date,
				TimeFrom: timeFrom,
				TimeTo:   timeTo,
				Duration: duration,
				Timezone: timezone,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created %d slots on %s:\n", len(slots), date)
			for _, s := range slots {
				fmt.Printf("  %s  %s-%s\n", s.ID, s.TimeFrom, s.TimeTo)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "slot date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeFrom, "from", "", "window start (HH:MM)")
	cmd.Flags().StringVar(&timeTo, "to", "", "window end (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 30, "slot length in minutes (15-120)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone (defaults to locale.timezone)")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func newSlotsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your time slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceTimeSlot, authorize.ActionList); err != nil {
				return err
			}

			profiles := profile.New(env.Client, env.Notifier, nil)
			svc := slot.New(env.Client, profiles, id, env.Notifier, nil, nil)

			slots, err := svc.ListSlots(cmd.Context())
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Println("No slots.")
				return nil
			}
			for _, s := range slots {
				state := "available"
				if !s.IsAvailable {
					state = "booked"
				}
				fmt.Printf("%s  %s %s-%s  %s\n", s.ID, s.Date, s.TimeFrom, s.TimeTo, state)
			}
			return nil
		},
	}

	return cmd
}

func newSlotsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <slot-id>",
		Short: "Delete an unbooked slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := doctorEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceTimeSlot, authorize.ActionDelete); err != nil {
				return err
			}

			profiles := profile.New(env.Client, env.Notifier, nil)
			svc := slot.New(env.Client, profiles, id, env.Notifier, nil, nil)

			if err := svc.DeleteSlot(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Slot deleted.")
			return nil
		},
	}

	return cmd
}
