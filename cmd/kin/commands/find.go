package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/kin/gedcom/query"
)

// FindCmd represents the find command
var FindCmd = &cobra.Command{
	Use:   "find QUERY [FILE]",
	Short: "Search individuals by name",
	Long: `Case-insensitive substring search over individual names.

Examples:
  kin find smith                     # Matches "John SMITH"
  kin find "Marie Curie" tree.ged    # Search a specific file`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFindCommand,
}

func runFindCommand(cmd *cobra.Command, args []string) error {
	result, _, err := parseInput(cmd, args[1:])
	if err != nil {
		return err
	}

	engine := query.NewEngine(result)
	matches := engine.FindPerson(args[0])

	if len(matches) == 0 {
		pterm.Println("No results found")
		return nil
	}

	pterm.Printf("Found %s matching individuals\n", pterm.Green(len(matches)))
	for _, person := range matches {
		pterm.Printf("  %s\n", personLine(person))
	}
	return nil
}
