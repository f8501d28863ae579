package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/core/patrol"
	"github.com/example/patrol/internal/wire"
)

// ShiftCmd returns the active-shift command.
func ShiftCmd() *cobra.Command {
	var auto bool

	cmd := &cobra.Command{
		Use:   "shift [label]",
		Short: "Show or set the active shift",
		Long: `Show the active shift, set it to one of the four fixed labels, or
re-run auto-detection with --auto (Thursday and Friday split at noon;
other days default to Thursday Morning).

The shift recorded on a completed patrol is whatever is active at the
moment the patrol ends.

Examples:
  patrol shift
  patrol shift "Friday Night"
  patrol shift --auto`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := wire.PatrolService()

			if auto {
				if len(args) > 0 {
					return fmt.Errorf("cannot combine --auto with a shift label")
				}
				detected := patrol.DetectShift(time.Now())
				if err := svc.SetActiveShift(detected); err != nil {
					return fmt.Errorf("failed to set shift: %w", err)
				}
				fmt.Printf("✓ Active shift: %s (auto-detected)\n", detected)
				return nil
			}

			if len(args) == 0 {
				sel, err := svc.ActiveSelection()
				if err != nil {
					return fmt.Errorf("failed to load active selection: %w", err)
				}
				fmt.Printf("Active shift: %s\n", sel.Shift)
				return nil
			}

			if err := svc.SetActiveShift(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Active shift: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "auto-detect the shift from the current weekday and hour")
	return cmd
}
