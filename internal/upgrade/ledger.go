package upgrade

import (
	"github.com/relkit/cli/internal/release"
)

// BuildLedger folds the generated per-component old-version lists together
// with the target release's own component versions.
//
// A component that was upgraded ends up with its full [old..., new] history;
// a component untouched by any upgrade unit gets a single-entry [new] list,
// which downstream tooling reads as an upgrade-to-same-version no-op.
func BuildLedger(target release.Descriptor, generated []GeneratedInfo) Ledger {
	ledger := make(Ledger, len(target.Components))

	for _, g := range generated {
		ledger[g.Name] = append(ledger[g.Name], g.OldVersions...)
	}

	for _, c := range target.Components {
		ledger[c.Name] = append(ledger[c.Name], c.Version)
	}

	return ledger
}
