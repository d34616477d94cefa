package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
	"school-fee-dashboard/internal/validation"

	"github.com/spf13/cobra"
)

func urlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Decode and build shareable dashboard query strings",
	}

	cmd.AddCommand(urlDecodeCmd())
	cmd.AddCommand(urlEncodeCmd())
	return cmd
}

type decodedQuery struct {
	State     models.FilterState `json:"state"`
	Canonical string             `json:"canonical"`
}

func urlDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <query>",
		Short: "Parse a dashboard query string into its filter state",
		Example: `  feedash url decode 'status=SUCCESS,FAILED&school_id=SCH-001&page=3'
  feedash url decode 'https://fees.example.com/transactions?search=asha'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			if i := strings.IndexByte(raw, '?'); i >= 0 {
				raw = raw[i+1:]
			}

			state := query.Decode(raw)
			out, err := json.MarshalIndent(decodedQuery{State: state, Canonical: query.Encode(state)}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func urlEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a canonical dashboard query string from flags",
		Example: `  feedash url encode --status SUCCESS --school SCH-001 --from 2024-01-01
  feedash url encode --search "asha" --base https://fees.example.com/transactions`,
		Args: cobra.NoArgs,
		RunE: runURLEncode,
	}

	cmd.Flags().StringSlice("status", nil, "statuses (SUCCESS, PENDING, FAILED)")
	cmd.Flags().StringSlice("school", nil, "school ids")
	cmd.Flags().StringSlice("gateway", nil, "payment gateways")
	cmd.Flags().String("from", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().String("search", "", "order id, collect id or student name")
	cmd.Flags().String("sort", string(models.DefaultSortField), "sort field")
	cmd.Flags().String("order", string(models.DefaultSortOrder), "sort order (asc, desc)")
	cmd.Flags().Int("limit", models.DefaultPageSize, "page size")
	cmd.Flags().Int("page", models.DefaultPage, "page number")
	cmd.Flags().String("base", "", "prefix the query with this URL")

	return cmd
}

func runURLEncode(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	statuses, _ := flags.GetStringSlice("status")
	schools, _ := flags.GetStringSlice("school")
	gateways, _ := flags.GetStringSlice("gateway")
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	search, _ := flags.GetString("search")
	sortField, _ := flags.GetString("sort")
	sortOrder, _ := flags.GetString("order")
	limit, _ := flags.GetInt("limit")
	page, _ := flags.GetInt("page")
	base, _ := flags.GetString("base")

	v := validation.New()

	state := models.NewFilterState()
	selected := make([]models.TransactionStatus, 0, len(statuses))
	for _, s := range statuses {
		status := strings.ToUpper(strings.TrimSpace(s))
		if err := v.Var(status, "transaction_status"); err != nil {
			return fmt.Errorf("invalid status %q", s)
		}
		selected = append(selected, models.TransactionStatus(status))
	}
	for flag, value := range map[string]string{"from": from, "to": to} {
		if err := v.Var(value, "omitempty,iso_date"); err != nil {
			return fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", flag, value)
		}
	}
	state.SetStatuses(selected...)
	state.SetSchoolIDs(schools...)
	state.SetGateways(gateways...)
	state.SetDateRange(from, to)
	state.SetSearch(search)
	state.SetSort(models.SortField(sortField), models.SortOrder(strings.ToLower(sortOrder)))
	state.SetPageSize(limit)
	// page last: every other setter resets it
	state.SetPage(page)

	if base != "" {
		fmt.Fprintln(cmd.OutOrStdout(), query.ShareableURL(base, state))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), query.Encode(state))
	return nil
}
