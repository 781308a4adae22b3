package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/kin/cmd/kin/commands"
	"github.com/teranos/kin/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kin",
	Short: "kin - GEDCOM genealogy parser and query tool",
	Long: `kin - Convert GEDCOM family tree files into a queryable relational model.

kin parses the line-oriented GEDCOM text format into individuals and
families, resolves parent/spouse/child relationships, and answers queries
over the result.

Available commands:
  parse   - Parse a GEDCOM file and write the model as JSON
  find    - Search individuals by name
  where   - Search individuals by birth/death location
  tree    - Build an ancestor/descendant tree for one person
  stats   - Show aggregate statistics
  export  - Write the parsed model into SQLite
  watch   - Re-parse and re-export whenever the file changes

Examples:
  kin parse data/family.ged            # Parse and save family_parsed.json
  kin parse --stats-only               # Statistics without JSON output
  kin find "John Smith"                # Name search
  kin tree 42 --generations 3          # Three generations around person 42
  kin export data/family.ged           # Export to SQLite`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON lines")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.FindCmd)
	rootCmd.AddCommand(commands.WhereCmd)
	rootCmd.AddCommand(commands.TreeCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
