package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/wire"
)

// ResetCmd returns the reset command.
func ResetCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset [location]",
		Short: "Clear patrol times for one location, or all with --all",
		Long: `Clear the start/end times for the given location (or the active
selection). With --all, clear every location after confirmation.

Reset only touches the current state; the history ledger is never affected.

Examples:
  patrol reset
  patrol reset "9 Boulevard Montclair"
  patrol reset --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc := wire.PatrolService()

			if all {
				if len(args) > 0 {
					return fmt.Errorf("cannot combine --all with a location")
				}
				ok, err := svc.ResetAll(ctx)
				if err != nil {
					return fmt.Errorf("failed to reset patrols: %w", err)
				}
				if !ok {
					fmt.Println("Reset cancelled.")
					return nil
				}
				fmt.Println("✓ All patrols reset")
				return nil
			}

			var location string
			if len(args) == 1 {
				loc, err := resolveLocation(args[0])
				if err != nil {
					return err
				}
				location = loc
			} else {
				sel, err := svc.ActiveSelection()
				if err != nil {
					return fmt.Errorf("failed to load active selection: %w", err)
				}
				location = sel.Location
			}

			if err := svc.ResetLocation(ctx, location); err != nil {
				return fmt.Errorf("failed to reset patrol: %w", err)
			}

			fmt.Printf("✓ Reset %s\n", location)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "reset every location (asks for confirmation)")
	return cmd
}
