package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/kin/config"
	"github.com/teranos/kin/db"
	"github.com/teranos/kin/gedcom/storage"
	"github.com/teranos/kin/logger"
)

var exportDBPath string

// ExportCmd represents the export command
var ExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write the parsed model into SQLite",
	Long: `Parse a GEDCOM file and export individuals, families and family
children into a SQLite database for relational querying.

Examples:
  kin export                         # Export default file into kin.db
  kin export tree.ged --db tree.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExportCommand,
}

func init() {
	ExportCmd.Flags().StringVar(&exportDBPath, "db", "", "SQLite database path (default from config)")
}

func runExportCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, _, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	dbPath := exportDBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}

	database, err := db.Open(dbPath, logger.Logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(database, logger.Logger); err != nil {
		return err
	}

	store := storage.NewSQLStore(database, logger.Logger)
	if err := store.SaveResult(result); err != nil {
		return err
	}

	individuals, families, err := store.Counts()
	if err != nil {
		return err
	}
	pterm.Success.Printf("Exported %d individuals and %d families to %s\n",
		individuals, families, dbPath)
	return nil
}
