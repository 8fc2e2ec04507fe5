// Package diff provides the default artifact differ: a digest walk over two
// artifact directories reporting removed, added, and changed modules.
package diff

import (
	"sort"
	"strings"

	"github.com/relkit/cli/internal/upgrade"
)

// Differ compares artifact directories by content digest.
// Module identifiers are slash-separated paths relative to the artifact
// directory root. Results are sorted, so identical inputs always produce
// identical output.
type Differ struct{}

// New creates a digest-based differ.
func New() *Differ {
	return &Differ{}
}

// Diff walks both directories and classifies every module present in either.
// Instruction files living inside the artifact directories are not modules
// and are skipped.
func (d *Differ) Diff(oldDir, newDir string) (upgrade.Diff, error) {
	oldDigests, err := digestTree(oldDir)
	if err != nil {
		return upgrade.Diff{}, err
	}
	newDigests, err := digestTree(newDir)
	if err != nil {
		return upgrade.Diff{}, err
	}

	result := upgrade.Diff{}
	for module, oldSum := range oldDigests {
		newSum, ok := newDigests[module]
		switch {
		case !ok:
			result.Removed = append(result.Removed, module)
		case oldSum != newSum:
			result.Changed = append(result.Changed, module)
		}
	}
	for module := range newDigests {
		if _, ok := oldDigests[module]; !ok {
			result.Added = append(result.Added, module)
		}
	}

	sort.Strings(result.Removed)
	sort.Strings(result.Added)
	sort.Strings(result.Changed)
	return result, nil
}

// isInstructionFile reports whether a relative module path names a persisted
// instruction file rather than an artifact module.
func isInstructionFile(rel string) bool {
	return strings.HasSuffix(rel, upgrade.InstructionFileSuffix)
}
