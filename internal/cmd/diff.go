package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relkit/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file-a> <file-b>",
		Short: "Compare two instruction files",
		Long: `Renders a YAML-aware comparison of two instruction files, for reviewing
hand edits or comparing the files of two release trees.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}
}

// runDiff prints the structural differences between two instruction files.
func runDiff(pathA, pathB string) error {
	report, err := output.CompareInstructionFiles(pathA, pathB, useColor())
	if err != nil {
		return err
	}

	if report == "" {
		output.Println("No differences")
		return nil
	}

	output.Print(report)
	return nil
}
