package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/kin/gedcom/query"
)

// WhereCmd represents the where command
var WhereCmd = &cobra.Command{
	Use:   "where QUERY [FILE]",
	Short: "Search individuals by birth/death location",
	Long: `Case-insensitive substring search over birth and death places.

Examples:
  kin where paris
  kin where "New York" tree.ged`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWhereCommand,
}

func runWhereCommand(cmd *cobra.Command, args []string) error {
	result, _, err := parseInput(cmd, args[1:])
	if err != nil {
		return err
	}

	engine := query.NewEngine(result)
	matches := engine.SearchByLocation(args[0])

	if len(matches) == 0 {
		pterm.Println("No results found")
		return nil
	}

	pterm.Printf("Found %s individuals\n", pterm.Green(len(matches)))
	for _, person := range matches {
		pterm.Printf("  %s\n", personLine(person))
		if person.Death.Place != "" {
			pterm.Printf("     Died in %s\n", person.Death.Place)
		}
	}
	return nil
}
