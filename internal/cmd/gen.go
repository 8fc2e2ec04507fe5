package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/relkit/cli/internal/diff"
	rerrors "github.com/relkit/cli/internal/errors"
	"github.com/relkit/cli/internal/output"
	"github.com/relkit/cli/internal/release"
	"github.com/relkit/cli/internal/render"
	"github.com/relkit/cli/internal/upgrade"
)

// genOptions holds the flags for the gen command.
type genOptions struct {
	target    string
	priors    []string
	ledgerOut string
}

// NewGenCmd creates the gen command.
func NewGenCmd() *cobra.Command {
	opts := &genOptions{}

	c := &cobra.Command{
		Use:   "gen",
		Short: "Generate upgrade instruction files for a target release",
		Long: `Resolves which components of the target release changed relative to the
prior releases and writes one instruction file per changed component into
that component's artifact directory.

Components whose instruction file already exists are validated and left
untouched. The resulting version ledger is printed and optionally written
to a file.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runGen(c.Context(), opts)
		},
	}

	c.Flags().StringVarP(&opts.target, "target", "t", "", "Target release descriptor (required)")
	c.Flags().StringArrayVarP(&opts.priors, "prior", "p", nil, "Prior release descriptor, repeatable (required)")
	c.Flags().StringVarP(&opts.ledgerOut, "ledger-out", "l", "", "Write the version ledger to this YAML file")
	_ = c.MarkFlagRequired("target")
	_ = c.MarkFlagRequired("prior")

	return c
}

// runGen executes the full pipeline: resolve, generate, build the ledger.
func runGen(ctx context.Context, opts *genOptions) error {
	target, priors, err := loadReleases(opts.target, opts.priors)
	if err != nil {
		return err
	}

	units := upgrade.NewResolver(output.Sink{}).Resolve(priors, *target)

	generated := make([]upgrade.GeneratedInfo, 0, len(units))
	err = output.RunWithSpinner(ctx, func() error {
		gen := upgrade.NewGenerator(diff.New(), render.New(), output.Sink{})
		for _, unit := range units {
			info, genErr := gen.Generate(unit)
			if genErr != nil {
				return genErr
			}
			generated = append(generated, info)
		}
		return nil
	}, output.WithTitle("Generating upgrade instructions..."))
	if err != nil {
		return err
	}

	ledger := upgrade.BuildLedger(*target, generated)
	printLedger(*target, ledger)

	ledgerOut := opts.ledgerOut
	if ledgerOut == "" && cliConfig != nil {
		ledgerOut = cliConfig.LedgerFile
	}
	if ledgerOut != "" {
		if err := writeLedgerFile(ledgerOut, ledger); err != nil {
			return err
		}
		output.Info("wrote version ledger", "path", ledgerOut)
	}

	return nil
}

// loadReleases loads the target and prior descriptors.
func loadReleases(targetPath string, priorPaths []string) (*release.Descriptor, []release.Descriptor, error) {
	target, err := release.Load(targetPath)
	if err != nil {
		return nil, nil, err
	}

	priors, err := release.LoadAll(priorPaths)
	if err != nil {
		return nil, nil, err
	}

	return target, priors, nil
}

// printLedger prints the ledger in target component order, honoring the
// configured output format.
func printLedger(target release.Descriptor, ledger upgrade.Ledger) {
	format := output.FormatTable
	if cliConfig != nil {
		format = output.ParseOutputFormat(cliConfig.Output)
	}

	if format == output.FormatYAML {
		data, err := yaml.Marshal(ledger)
		if err != nil {
			output.Error("rendering ledger", "error", err)
			return
		}
		output.Print(string(data))
		return
	}

	rows := make([]output.LedgerRow, 0, len(target.Components))
	for _, c := range target.Components {
		rows = append(rows, output.LedgerRow{Name: c.Name, Versions: ledger[c.Name]})
	}
	output.Println(output.RenderLedgerTable(rows))
}

// writeLedgerFile persists the ledger as YAML.
func writeLedgerFile(path string, ledger upgrade.Ledger) error {
	data, err := yaml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("serializing ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return rerrors.NewIOError("writing version ledger", path, "", err)
	}
	return nil
}
