package upgrade

import (
	"strings"

	"github.com/relkit/cli/internal/release"
)

// Resolver determines the minimal set of per-component upgrade units between
// prior releases and a target release.
type Resolver struct {
	log Logger
}

// NewResolver creates a resolver logging to the given sink.
func NewResolver(log Logger) *Resolver {
	if log == nil {
		log = nopLogger{}
	}
	return &Resolver{log: log}
}

// Resolve returns one upgrade unit per component of the target release that
// appears in at least one prior release with a different version. Units are
// ordered by the component's position in target.Components.
//
// Any version difference counts as an upgrade edge; versions are opaque
// tokens with no ordering semantics. Old candidates are deduplicated by
// exact (name, version) equality; when duplicates carry different artifact
// directories the first-seen candidate wins and a warning is logged.
func (r *Resolver) Resolve(prior []release.Descriptor, target release.Descriptor) []Unit {
	targetByName := make(map[string]release.ComponentInfo, len(target.Components))
	for _, c := range target.Components {
		targetByName[c.Name] = c
	}

	seen := make(map[release.ComponentVersion]release.ComponentInfo)
	oldsByName := make(map[string][]release.ComponentInfo)

	for _, rel := range prior {
		for _, old := range rel.Components {
			tgt, ok := targetByName[old.Name]
			if !ok || tgt.Version == old.Version {
				continue
			}

			key := old.Ref()
			if first, dup := seen[key]; dup {
				if first.ArtifactDir != old.ArtifactDir {
					r.log.Warn("duplicate old version with conflicting artifact dir, keeping first",
						"component", old.Name,
						"version", old.Version,
						"kept", first.ArtifactDir,
						"ignored", old.ArtifactDir,
						"release", rel.SourceFile)
				}
				continue
			}
			seen[key] = old
			oldsByName[old.Name] = append(oldsByName[old.Name], old)
		}
	}

	units := make([]Unit, 0, len(oldsByName))
	for _, tgt := range target.Components {
		olds := oldsByName[tgt.Name]
		if len(olds) == 0 {
			continue
		}

		unit := Unit{OldInfos: olds, NewInfo: tgt}
		r.log.Info("component needs upgrade instructions",
			"component", tgt.Name,
			"from", strings.Join(unit.OldVersions(), ", "),
			"to", tgt.Version)
		units = append(units, unit)
	}

	return units
}
