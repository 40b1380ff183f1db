package main

import (
	"fmt"
	"strings"

	"github.com/alex005489465/MeowManager/internal/types"
	"github.com/spf13/cobra"
)

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customer records",
	}

	cmd.AddCommand(
		customerCreateCmd(a),
		customerUpdateCmd(a),
		customerStatusCmd(a),
		customerGetCmd(a),
		customerSearchCmd(a),
		customerListCmd(a),
		customerBirthdaysCmd(a),
		customerStatsCmd(a),
	)
	return cmd
}

func customerCreateCmd(a *app) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer from a JSON payload",
		Example: `  erpctl customers create --data '{"name":"Amy","gender":"FEMALE","phone":"0912345678","address":"Taipei"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req types.CustomerCreateRequest
			if err := readPayload(cmd, data, file, &req); err != nil {
				return err
			}
			customer, err := a.services.Customers.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON payload")
	cmd.Flags().StringVar(&file, "file", "", "file containing the JSON payload (- for stdin)")
	return cmd
}

func customerUpdateCmd(a *app) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a customer's details from a JSON payload (the payload must include the id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req types.CustomerUpdateRequest
			if err := readPayload(cmd, data, file, &req); err != nil {
				return err
			}
			customer, err := a.services.Customers.Update(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON payload")
	cmd.Flags().StringVar(&file, "file", "", "file containing the JSON payload (- for stdin)")
	return cmd
}

func customerStatusCmd(a *app) *cobra.Command {
	var id int64
	var status string
	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Change a customer's status (ACTIVE, SUSPENDED or BLACKLIST)",
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := a.services.Customers.UpdateStatus(cmd.Context(), id, types.CustomerStatus(strings.ToUpper(status)))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "customer id")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func customerGetCmd(a *app) *cobra.Command {
	var (
		id    int64
		email string
		phone string
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a single customer by id, email or phone",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				customer *types.Customer
				err      error
				what     string
			)
			switch {
			case cmd.Flags().Changed("id"):
				what = fmt.Sprintf("customer %d", id)
				customer, err = a.services.Customers.GetByID(cmd.Context(), id)
			case email != "":
				what = fmt.Sprintf("customer with email %s", email)
				customer, err = a.services.Customers.GetByEmail(cmd.Context(), email)
			case phone != "":
				what = fmt.Sprintf("customer with phone %s", phone)
				customer, err = a.services.Customers.GetByPhone(cmd.Context(), phone)
			default:
				return fmt.Errorf("one of --id, --email or --phone is required")
			}
			if err != nil {
				return err
			}
			if customer == nil {
				return notFound(what)
			}
			return printJSON(cmd.OutOrStdout(), customer)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "customer id")
	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&phone, "phone", "", "customer phone number")
	cmd.MarkFlagsMutuallyExclusive("id", "email", "phone")
	return cmd
}

func customerSearchCmd(a *app) *cobra.Command {
	var (
		name, phone, email, status string
		byName                     bool
		page, size                 int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search customers",
		Long: `Search customers matching all the supplied criteria.

With --by-name only the name is used and the full (unpaged) list of matches is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if byName {
				customers, err := a.services.Customers.SearchByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), customers)
			}

			req := types.CustomerSearchRequest{
				PageRequest: pageRequest(page, size),
				Name:        name,
				Phone:       phone,
				Email:       email,
				Status:      types.CustomerStatus(strings.ToUpper(status)),
			}
			res, err := a.services.Customers.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name (partial match)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&status, "status", "", "ACTIVE, SUSPENDED or BLACKLIST")
	cmd.Flags().BoolVar(&byName, "by-name", false, "search by name only")
	addPageFlags(cmd, &page, &size)
	return cmd
}

func customerListCmd(a *app) *cobra.Command {
	var (
		status     string
		recent     bool
		page, size int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers (all, by status, or most recent first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := pageRequest(page, size)

			var (
				res *types.Page[types.Customer]
				err error
			)
			switch {
			case status != "":
				res, err = a.services.Customers.GetByStatus(cmd.Context(), types.CustomerSearchStatusRequest{
					PageRequest: pr,
					Status:      types.CustomerStatus(strings.ToUpper(status)),
				})
			case recent:
				res, err = a.services.Customers.Recent(cmd.Context(), pr)
			default:
				res, err = a.services.Customers.GetAll(cmd.Context(), pr)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only list customers with this status")
	cmd.Flags().BoolVar(&recent, "recent", false, "list the most recently created customers")
	cmd.MarkFlagsMutuallyExclusive("status", "recent")
	addPageFlags(cmd, &page, &size)
	return cmd
}

func customerBirthdaysCmd(a *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List customers born between two dates (YYYY-MM-DD, inclusive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := a.services.Customers.GetByBirthDateRange(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), customers)
		},
	}
	cmd.Flags().StringVar(&start, "from", "", "start date")
	cmd.Flags().StringVar(&end, "to", "", "end date")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func customerStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the number of customers per status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.services.Customers.StatusStatistics(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}
