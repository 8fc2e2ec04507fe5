// Package upgrade computes which components of a target release changed
// relative to prior releases and synthesizes the persisted upgrade
// instruction file for each one.
//
// The pipeline is Resolver -> Generator (per unit) -> instruction file store
// (read-or-write) -> BuildLedger (aggregate). Everything is synchronous and
// single-writer: concurrent invocations against the same artifact tree race
// on file creation and are not supported.
package upgrade

import (
	"github.com/relkit/cli/internal/release"
)

// ChangeKind tags a module-level change between two artifact trees.
type ChangeKind string

const (
	// KindAdded marks a module present only in the new artifact tree.
	KindAdded ChangeKind = "added"

	// KindRemoved marks a module present only in the old artifact tree.
	KindRemoved ChangeKind = "removed"

	// KindChanged marks a module present in both trees with different content.
	KindChanged ChangeKind = "changed"
)

// Instruction describes one module-level change consumed by a renderer to
// produce runtime-applicable steps.
type Instruction struct {
	Kind   ChangeKind `yaml:"kind"`
	Module string     `yaml:"module"`
}

// Unit is the upgrade edge for a single component: the old versions an
// instance may be running, and the version the target release carries.
// All infos, including NewInfo, share the same component name.
type Unit struct {
	OldInfos []release.ComponentInfo
	NewInfo  release.ComponentInfo
}

// OldVersions returns the versions of the unit's old infos, in order.
func (u Unit) OldVersions() []string {
	versions := make([]string, 0, len(u.OldInfos))
	for _, info := range u.OldInfos {
		versions = append(versions, info.Version)
	}
	return versions
}

// Diff holds the module identifiers that differ between two artifact
// directories.
type Diff struct {
	Removed []string
	Added   []string
	Changed []string
}

// Instructions converts the diff into a tagged instruction list, in
// removed, added, changed order.
func (d Diff) Instructions() []Instruction {
	tagged := make([]Instruction, 0, len(d.Removed)+len(d.Added)+len(d.Changed))
	for _, m := range d.Removed {
		tagged = append(tagged, Instruction{Kind: KindRemoved, Module: m})
	}
	for _, m := range d.Added {
		tagged = append(tagged, Instruction{Kind: KindAdded, Module: m})
	}
	for _, m := range d.Changed {
		tagged = append(tagged, Instruction{Kind: KindChanged, Module: m})
	}
	return tagged
}

// Differ compares two artifact directories and reports module-level changes.
// Implementations must be deterministic for identical inputs.
type Differ interface {
	Diff(oldDir, newDir string) (Diff, error)
}

// Renderer converts a tagged change list into the runtime instruction
// sequence persisted in the instruction file.
type Renderer interface {
	Render(tagged []Instruction) ([]Instruction, error)
}

// Logger is the diagnostic sink injected into the resolver and generator.
// It is never used for control flow.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}

// GeneratedInfo names a component and the old versions its instruction file
// covers, as returned by the generator.
type GeneratedInfo struct {
	Name        string
	OldVersions []string
}

// Ledger maps component name to the ordered versions the component has ever
// been upgraded from, ending with its version in the target release.
// Downstream release tooling uses it to detect upgrade-to-same-version no-ops.
type Ledger map[string][]string
