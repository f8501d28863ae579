package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/core/patrol"
	"github.com/example/patrol/internal/ports/primary"
	"github.com/example/patrol/internal/wire"
)

// SubmitCmd returns the report submission command.
func SubmitCmd() *cobra.Command {
	var shiftFlag string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Email the shift report and clear the current state",
		Long: `Build one report row per location with a recorded start or end,
send the report for the active shift (or the --shift override), and on
success clear all current patrol state.

With no recorded patrols, nothing is sent and the state is untouched.

Examples:
  patrol submit
  patrol submit --shift "Friday Night"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.PatrolService()

			shift := shiftFlag
			if shift == "" {
				sel, err := svc.ActiveSelection()
				if err != nil {
					return fmt.Errorf("failed to load active selection: %w", err)
				}
				shift = sel.Shift
			} else {
				parsed, err := patrol.ParseShift(shift)
				if err != nil {
					return err
				}
				shift = parsed
			}

			result, err := svc.SubmitAll(ctx, shift)
			if err != nil {
				return err
			}

			if result.Outcome == primary.SubmitNoData {
				fmt.Println("No patrols recorded.")
				return nil
			}

			fmt.Printf("✓ All patrols sent (%d locations, shift: %s)\n", result.Rows, shift)
			return nil
		},
	}

	cmd.Flags().StringVar(&shiftFlag, "shift", "", "shift label for the report (default: active shift)")
	return cmd
}
