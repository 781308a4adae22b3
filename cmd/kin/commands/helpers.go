package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/kin/config"
	"github.com/teranos/kin/errors"
	"github.com/teranos/kin/gedcom"
	"github.com/teranos/kin/gedcom/parser"
)

// inputPath resolves the GEDCOM file for a command: the first positional
// argument when given, otherwise the configured default. The file must
// exist — a missing input is the one hard, user-visible failure, reported
// before the parser ever runs.
func inputPath(cfg *config.Config, args []string) (string, error) {
	path := cfg.Data.Path
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err != nil {
		return "", errors.WithHint(
			errors.Newf("GEDCOM file %q not found", path),
			"place your .ged file in the data/ directory or pass its path as an argument")
	}
	return path, nil
}

// parseInput runs the full pipeline over the resolved input with progress
// wired to the terminal at the current verbosity.
func parseInput(cmd *cobra.Command, args []string) (*gedcom.Result, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	path, err := inputPath(cfg, args)
	if err != nil {
		return nil, "", err
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	result, err := parser.New(path, parser.WithEmitter(parser.NewCLIEmitter(verbosity))).Parse()
	if err != nil {
		// The parser already degraded to an empty result; the error is
		// informational and recorded in the summary.
		return result, path, nil
	}
	return result, path, nil
}

// writeJSON serializes the result the way the model is meant to be shared:
// two-space indent, UTF-8 verbatim (no HTML escaping).
func writeJSON(result *gedcom.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
