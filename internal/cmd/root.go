// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relkit/cli/internal/config"
	"github.com/relkit/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool
	noColorFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the relkit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "relkit",
		Short: "Release upgrade instruction generator",
		Long: `relkit computes which components of a release changed relative to prior
releases and generates a persisted upgrade instruction file per changed
component, next to that component's artifacts.

Existing instruction files are trusted verbatim, so an operator can
hand-author or edit one to override generation entirely.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: RELKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable styled output (env: RELKIT_NO_COLOR)")

	// Add subcommands
	rootCmd.AddCommand(NewGenCmd())
	rootCmd.AddCommand(NewLedgerCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// Commands that don't need config should still work
		output.Debug("config load error", "error", err)
		cfg = config.DefaultConfig()
	}
	cliConfig = cfg

	return nil
}

// useColor reports whether styled output is wanted, combining the flag,
// the config file, and TTY detection.
func useColor() bool {
	if noColorFlag || (cliConfig != nil && cliConfig.NoColor) {
		return false
	}
	return output.IsTTY()
}
