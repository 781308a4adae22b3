package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/kin/errors"
	"github.com/teranos/kin/gedcom/query"
)

var treeGenerations int

// TreeCmd represents the tree command
var TreeCmd = &cobra.Command{
	Use:   "tree ID [FILE]",
	Short: "Build an ancestor/descendant tree for one person",
	Long: `Build a family tree rooted at the given individual id and print it
as JSON. Generations are signed: the root is 0, ancestors count up,
descendants count down.

Examples:
  kin tree 42
  kin tree 42 --generations 4 tree.ged`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTreeCommand,
}

func init() {
	TreeCmd.Flags().IntVarP(&treeGenerations, "generations", "g", 3, "Maximum tree depth")
}

func runTreeCommand(cmd *cobra.Command, args []string) error {
	result, _, err := parseInput(cmd, args[1:])
	if err != nil {
		return err
	}

	engine := query.NewEngine(result)
	node := engine.GetFamilyTree(args[0], treeGenerations)
	if node == nil {
		return errors.NewNotFoundError("no individual with id %q", args[0])
	}

	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize tree")
	}
	fmt.Println(string(out))
	return nil
}
