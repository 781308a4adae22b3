package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/kin/gedcom/query"
)

var statsFormat string

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats [FILE]",
	Short: "Show aggregate statistics",
	Long: `Parse a GEDCOM file and show aggregate statistics: totals, gender
and occupation distributions, birth centuries, and the count of
individuals with no recorded death date.

Examples:
  kin stats
  kin stats tree.ged --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatsCommand,
}

func init() {
	StatsCmd.Flags().StringVarP(&statsFormat, "format", "f", "table", "Output format (table/json)")
}

func runStatsCommand(cmd *cobra.Command, args []string) error {
	result, path, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	stats := query.NewEngine(result).GetStatistics()

	if statsFormat == "json" {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.DefaultSection.Printf("Statistics for %s", path)
	pterm.Printf("Individuals: %s\n", pterm.Green(stats.TotalIndividuals))
	pterm.Printf("Families:    %s\n", pterm.Green(stats.TotalFamilies))
	pterm.Printf("Living:      %s\n", pterm.Green(stats.LivingPeople))

	printDistribution("Gender", stats.GenderDistribution)
	printDistribution("Occupations", stats.OccupationDistribution)
	printDistribution("Birth centuries", stats.CenturyDistribution)
	return nil
}

// printDistribution renders a frequency map as a two-column table, most
// frequent first.
func printDistribution(title string, dist map[string]int) {
	if len(dist) == 0 {
		return
	}

	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if dist[keys[i]] != dist[keys[j]] {
			return dist[keys[i]] > dist[keys[j]]
		}
		return keys[i] < keys[j]
	})

	rows := pterm.TableData{{title, "Count"}}
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprintf("%d", dist[k])})
	}
	pterm.Println()
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
