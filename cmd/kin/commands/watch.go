package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/kin/config"
	"github.com/teranos/kin/gedcom"
	"github.com/teranos/kin/gedcom/parser"
	"github.com/teranos/kin/gedcom/watcher"
)

var watchOutput string

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch [FILE]",
	Short: "Re-parse and re-export whenever the file changes",
	Long: `Watch a GEDCOM file and regenerate the JSON model every time the
file is written. Runs until interrupted.

Examples:
  kin watch data/family.ged
  kin watch tree.ged -o out/tree.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatchCommand,
}

func init() {
	WatchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output JSON file path (default: <input>_parsed.json)")
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := inputPath(cfg, args)
	if err != nil {
		return err
	}

	output := watchOutput
	if output == "" {
		output = cfg.DeriveOutputPath(path)
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	emitter := parser.NewCLIEmitter(verbosity)

	regenerate := func(result *gedcom.Result) error {
		if err := writeJSON(result, output); err != nil {
			return err
		}
		pterm.Success.Printf("Regenerated %s (%d individuals, %d families)\n",
			output, result.Summary.TotalIndividuals, result.Summary.TotalFamilies)
		return nil
	}

	// Initial parse so the output exists before the first change.
	result, _ := parser.New(path, parser.WithEmitter(emitter)).Parse()
	if err := regenerate(result); err != nil {
		return err
	}

	fw, err := watcher.New(path, parser.WithEmitter(emitter))
	if err != nil {
		return err
	}
	fw.OnReload(regenerate)
	fw.Start()
	defer fw.Stop()

	pterm.Printf("Watching %s (Ctrl+C to stop)\n", pterm.LightCyan(path))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
