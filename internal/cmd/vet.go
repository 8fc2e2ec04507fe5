package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relkit/cli/internal/output"
	"github.com/relkit/cli/internal/upgrade"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet <instruction-file>...",
		Short: "Validate instruction files",
		Long: `Loads each instruction file and checks that it is a single well-formed
record whose upFrom and downTo version sets match. Useful after hand-editing
a file, since generation trusts existing files verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(args)
		},
	}
}

// runVet validates each file, reporting the first failure.
func runVet(paths []string) error {
	for _, path := range paths {
		file, err := upgrade.Load(path)
		if err != nil {
			return err
		}
		output.Println(fmt.Sprintf("%s: ok (version %s, %d upgrade path(s))",
			path, file.Version, len(file.UpFrom)))
	}
	return nil
}
