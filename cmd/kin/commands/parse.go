package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/kin/config"
	"github.com/teranos/kin/gedcom"
	"github.com/teranos/kin/gedcom/query"
)

var (
	parseOutput    string
	parseStatsOnly bool
	parseSearch    string
)

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse [FILE]",
	Short: "Parse a GEDCOM file and write the model as JSON",
	Long: `Parse a GEDCOM file into individuals and families, resolve
relationships, print summary statistics and save the model as JSON.

Examples:
  kin parse                          # Parse the configured default file
  kin parse data/family.ged          # Parse a specific file
  kin parse --search "John Doe"      # Parse, then search for a person
  kin parse --stats-only             # Statistics only, skip the JSON file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCommand,
}

func init() {
	ParseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output JSON file path (default: <input>_parsed.json)")
	ParseCmd.Flags().BoolVar(&parseStatsOnly, "stats-only", false, "Show statistics only, do not save JSON")
	ParseCmd.Flags().StringVar(&parseSearch, "search", "", "Search for a person by name after parsing")
}

func runParseCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, path, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	engine := query.NewEngine(result)
	stats := engine.GetStatistics()

	pterm.Printf("Parsed %s\n", pterm.LightCyan(path))
	pterm.Printf("  Individuals: %s\n", pterm.Green(stats.TotalIndividuals))
	pterm.Printf("  Families:    %s\n", pterm.Green(stats.TotalFamilies))
	pterm.Printf("  Living:      %s\n", pterm.Green(stats.LivingPeople))
	if result.Summary.Error != "" {
		pterm.Warning.Printf("Parse degraded to empty result: %s\n", result.Summary.Error)
	}

	if parseSearch != "" {
		printSearchResults(engine, parseSearch, cfg.Search.ResultLimit)
	}

	if parseStatsOnly {
		return nil
	}

	output := parseOutput
	if output == "" {
		output = cfg.DeriveOutputPath(path)
	}
	if err := writeJSON(result, output); err != nil {
		return err
	}
	pterm.Success.Printf("Saved to %s\n", output)
	return nil
}

func printSearchResults(engine *query.Engine, nameQuery string, limit int) {
	results := engine.FindPerson(nameQuery)
	pterm.Printf("\nSearch results for %q:\n", nameQuery)

	if len(results) == 0 {
		pterm.Println("  No results found")
		return
	}

	shown := results
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for i, person := range shown {
		pterm.Printf("  %d. %s (ID: %s)\n", i+1, person.Name, person.ID)
		if person.Birth.Date != "" {
			pterm.Printf("     Born: %s\n", person.Birth.Date)
		}
	}
	if len(results) > limit {
		pterm.Printf("  ... and %d more\n", len(results)-limit)
	}
}

// personLine formats one individual for list output.
func personLine(person *gedcom.Individual) string {
	line := fmt.Sprintf("%s (ID: %s)", person.Name, person.ID)
	if person.Birth.Date != "" {
		line += fmt.Sprintf(", born %s", person.Birth.Date)
	}
	if person.Birth.Place != "" {
		line += fmt.Sprintf(" in %s", person.Birth.Place)
	}
	return line
}
