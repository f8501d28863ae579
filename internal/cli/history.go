package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/core/history"
	"github.com/example/patrol/internal/wire"
)

// HistoryCmd returns the history browsing command.
func HistoryCmd() *cobra.Command {
	var (
		shiftFlag  string
		searchFlag string
		fromFlag   string
		toFlag     string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse completed patrols grouped by date",
		Long: `Load the history ledger and print it grouped by date, newest date
first. Filters combine: shift label, case-insensitive location search,
and an inclusive date range (an inverted range is swapped, not rejected).

Examples:
  patrol history
  patrol history --shift "Thursday Night"
  patrol history --search victoria
  patrol history --from 2026-08-01 --to 2026-08-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.HistoryService()

			if err := svc.Load(ctx); err != nil {
				return err
			}

			if shiftFlag != "" {
				if err := svc.SetShift(shiftFlag); err != nil {
					return err
				}
			}
			svc.SetSearch(searchFlag)
			if fromFlag != "" {
				d, err := history.ParseDate(fromFlag)
				if err != nil {
					return err
				}
				svc.SetFromDate(d)
			}
			if toFlag != "" {
				d, err := history.ParseDate(toFlag)
				if err != nil {
					return err
				}
				svc.SetToDate(d)
			}

			fmt.Printf("Dates: %s\n\n", svc.RangeStatus())

			for _, group := range svc.Groups() {
				fmt.Println(color.New(color.FgHiCyan).Sprint(group.Date))
				for _, line := range group.Lines {
					fmt.Printf("  %s\n", line)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&shiftFlag, "shift", "", `filter by shift label (default "All Shifts")`)
	cmd.Flags().StringVar(&searchFlag, "search", "", "filter by location substring, case-insensitive")
	cmd.Flags().StringVar(&fromFlag, "from", "", "lower date bound, yyyy-MM-dd (inclusive)")
	cmd.Flags().StringVar(&toFlag, "to", "", "upper date bound, yyyy-MM-dd (inclusive)")
	return cmd
}
