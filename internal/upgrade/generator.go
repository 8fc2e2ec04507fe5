package upgrade

import (
	"errors"
	"fmt"

	rerrors "github.com/relkit/cli/internal/errors"
)

// Generator creates or validates the persisted instruction file for each
// upgrade unit.
type Generator struct {
	differ   Differ
	renderer Renderer
	log      Logger
}

// NewGenerator creates a generator using the given differ and renderer.
func NewGenerator(differ Differ, renderer Renderer, log Logger) *Generator {
	if log == nil {
		log = nopLogger{}
	}
	return &Generator{differ: differ, renderer: renderer, log: log}
}

// Generate ensures the instruction file for the unit's new version exists
// and returns the old versions it covers.
//
// A pre-existing file at the derived path is loaded, validated, and trusted
// verbatim: no diff runs and nothing is rewritten. This keeps generation
// idempotent and lets an operator hand-author a file to override generation
// entirely. Existing files are never merged with a fresh diff.
//
// Otherwise the artifact differ runs once per old info against the new
// artifact directory, the tagged changes go through the renderer, and the
// assembled file is validated and persisted with an empty down-path per old
// version. Down-path content generation is a reserved extension point.
func (g *Generator) Generate(unit Unit) (GeneratedInfo, error) {
	name := unit.NewInfo.Name
	path := PathFor(unit.NewInfo)

	existing, err := Load(path)
	switch {
	case err == nil:
		g.log.Debug("instruction file exists, trusting it verbatim",
			"component", name, "path", path)
		return GeneratedInfo{Name: name, OldVersions: existing.UpFromVersions()}, nil
	case !errors.Is(err, rerrors.ErrNotFound):
		return GeneratedInfo{}, fmt.Errorf("component %s: %w", name, err)
	}

	file := &InstructionFile{
		Version: unit.NewInfo.Version,
		UpFrom:  make([]VersionInstructions, 0, len(unit.OldInfos)),
		DownTo:  make([]VersionInstructions, 0, len(unit.OldInfos)),
	}

	for _, old := range unit.OldInfos {
		diff, err := g.differ.Diff(old.ArtifactDir, unit.NewInfo.ArtifactDir)
		if err != nil {
			return GeneratedInfo{}, fmt.Errorf("component %s: diffing %s against %s: %w",
				name, old.Version, unit.NewInfo.Version, err)
		}

		tagged := diff.Instructions()
		g.log.Debug("computed artifact diff",
			"component", name,
			"from", old.Version,
			"to", unit.NewInfo.Version,
			"removed", len(diff.Removed),
			"added", len(diff.Added),
			"changed", len(diff.Changed))

		steps, err := g.renderer.Render(tagged)
		if err != nil {
			return GeneratedInfo{}, fmt.Errorf("component %s: rendering instructions for %s: %w",
				name, old.Version, err)
		}

		file.UpFrom = append(file.UpFrom, VersionInstructions{
			Version:      old.Version,
			Instructions: steps,
		})
		file.DownTo = append(file.DownTo, VersionInstructions{
			Version:      old.Version,
			Instructions: []Instruction{},
		})
	}

	if err := Write(path, file); err != nil {
		return GeneratedInfo{}, fmt.Errorf("component %s: %w", name, err)
	}

	g.log.Info("wrote instruction file",
		"component", name,
		"version", unit.NewInfo.Version,
		"path", path)

	return GeneratedInfo{Name: name, OldVersions: unit.OldVersions()}, nil
}
