package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/patrol/internal/core/patrol"
	"github.com/example/patrol/internal/wire"
)

// LocationsCmd returns the catalog listing command.
func LocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the patrol location catalog",
		Long: `List the fixed, ordered catalog of patrol locations with the index
accepted by the other commands. The active location is marked.

Examples:
  patrol locations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := wire.PatrolService().ActiveSelection()
			if err != nil {
				return fmt.Errorf("failed to load active selection: %w", err)
			}

			for i, loc := range patrol.Catalog() {
				marker := ""
				if loc == sel.Location {
					marker = color.New(color.FgHiMagenta).Sprint(" ←")
				}
				fmt.Printf("%d. %s%s\n", i+1, loc, marker)
			}
			return nil
		},
	}
}

// SelectCmd returns the active-location selection command.
func SelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <location>",
		Short: "Set the active location",
		Long: `Set the active location used by 'patrol log' and 'patrol reset' when
no location argument is given. Accepts a name or a catalog index.

Examples:
  patrol select "190 Promenade du Portage"
  patrol select 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := resolveLocation(args[0])
			if err != nil {
				return err
			}

			if err := wire.PatrolService().SetActiveLocation(location); err != nil {
				return fmt.Errorf("failed to set active location: %w", err)
			}

			fmt.Printf("✓ Active location: %s\n", location)
			return nil
		},
	}
}
