package admin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-cli/internal/api"
	"github.com/medvault/medvault-cli/pkg/authorize"
	"github.com/medvault/medvault-cli/pkg/paginate"
)

func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and remove platform accounts",
	}

	cmd.AddCommand(newDoctorsListCommand())
	cmd.AddCommand(newPatientsListCommand())
	cmd.AddCommand(newRemoveCommand())

	return cmd
}

func listFlags(cmd *cobra.Command, page, limit *int, search *string) {
	cmd.Flags().IntVar(page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(limit, "limit", 20, "items per page")
	cmd.Flags().StringVar(search, "search", "", "filter by name or username")
}

func printPageFooter(page, totalItems, limit int) {
	first, last := paginate.Bounds(page, totalItems, limit)
	if first == 0 {
		fmt.Println("Page is past the end.")
		return
	}
	fmt.Printf("Showing %d-%d of %d (page %d/%d)\n", first, last, totalItems, page, paginate.TotalPages(totalItems, limit))
	if paginate.HasNext(page, totalItems, limit) {
		fmt.Println("More results on the next page.")
	}
}

func newDoctorsListCommand() *cobra.Command {
	var page, limit int
	var search string

	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "List doctor accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := adminEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAccount, authorize.ActionList); err != nil {
				return err
			}

			result, err := env.Client.ListDoctors(cmd.Context(), api.ListParams{Page: page, Limit: limit, Search: search})
			if err != nil {
				return err
			}
			for _, d := range result.Items {
				fmt.Printf("%s  %s %s  %s  (%s)\n", d.ID, d.FirstName, d.LastName, strings.Join(d.Specialization, ", "), d.Status)
			}
			printPageFooter(result.Page, result.TotalItems, result.Limit)
			return nil
		},
	}

	listFlags(cmd, &page, &limit, &search)

	return cmd
}

func newPatientsListCommand() *cobra.Command {
	var page, limit int
	var search string

	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List patient accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := adminEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAccount, authorize.ActionList); err != nil {
				return err
			}

			result, err := env.Client.ListPatients(cmd.Context(), api.ListParams{Page: page, Limit: limit, Search: search})
			if err != nil {
				return err
			}
			for _, p := range result.Items {
				fmt.Printf("%s  %s %s  (%s)\n", p.ID, p.FirstName, p.LastName, p.Status)
			}
			printPageFooter(result.Page, result.TotalItems, result.Limit)
			return nil
		},
	}

	listFlags(cmd, &page, &limit, &search)

	return cmd
}

func newRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <doctor|patient> <account-id>",
		Short: "Remove an account from the platform",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, id, err := adminEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Authorize(cmd.Context(), id, authorize.ResourceAccount, authorize.ActionDelete); err != nil {
				return err
			}

			switch args[0] {
			case "doctor":
				err = env.Client.RemoveDoctor(cmd.Context(), args[1])
			case "patient":
				err = env.Client.RemovePatient(cmd.Context(), args[1])
			default:
				return fmt.Errorf("account kind must be doctor or patient, got %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("remove account: %w", err)
			}
			fmt.Println("Account removed.")
			return nil
		},
	}

	return cmd
}
