// Package config provides configuration loading and management.
package config

// Config represents the relkit CLI configuration, loaded from
// ~/.relkit/config.yaml and overridable with RELKIT_* environment variables.
type Config struct {
	// NoColor disables styled terminal output.
	// Env: RELKIT_NO_COLOR
	NoColor bool `json:"noColor,omitempty" mapstructure:"noColor"`

	// LedgerFile is the default path the gen command writes the version
	// ledger to. Empty means the ledger is only printed.
	// Env: RELKIT_LEDGER_FILE
	LedgerFile string `json:"ledgerFile,omitempty" mapstructure:"ledgerFile"`

	// Output is the default output format for tabular commands.
	// Valid values: "table" (default), "yaml".
	Output string `json:"output,omitempty" mapstructure:"output"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Output: "table",
	}
}
