package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relkit/cli/internal/output"
	"github.com/relkit/cli/internal/upgrade"
)

// ledgerOptions holds the flags for the ledger command.
type ledgerOptions struct {
	target string
	priors []string
}

// NewLedgerCmd creates the ledger command.
func NewLedgerCmd() *cobra.Command {
	opts := &ledgerOptions{}

	c := &cobra.Command{
		Use:   "ledger",
		Short: "Show the version ledger a generation run would produce",
		Long: `Resolves upgrade units between the prior releases and the target release
and prints the resulting version ledger without reading or writing any
instruction files. Pre-existing hand-authored files are not consulted, so
the output reflects resolution only.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runLedger(opts)
		},
	}

	c.Flags().StringVarP(&opts.target, "target", "t", "", "Target release descriptor (required)")
	c.Flags().StringArrayVarP(&opts.priors, "prior", "p", nil, "Prior release descriptor, repeatable (required)")
	_ = c.MarkFlagRequired("target")
	_ = c.MarkFlagRequired("prior")

	return c
}

// runLedger resolves units and prints the ledger, without touching disk.
func runLedger(opts *ledgerOptions) error {
	target, priors, err := loadReleases(opts.target, opts.priors)
	if err != nil {
		return err
	}

	units := upgrade.NewResolver(output.Sink{}).Resolve(priors, *target)

	generated := make([]upgrade.GeneratedInfo, 0, len(units))
	for _, unit := range units {
		generated = append(generated, upgrade.GeneratedInfo{
			Name:        unit.NewInfo.Name,
			OldVersions: unit.OldVersions(),
		})
	}

	printLedger(*target, upgrade.BuildLedger(*target, generated))
	return nil
}
