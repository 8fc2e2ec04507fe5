// Package render provides the default instruction renderer.
//
// A renderer converts the differ's tagged change list into the runtime
// instruction sequence persisted in the instruction file. The default
// renderer only fixes the ordering; runtime-specific renderers can replace
// it through the upgrade.Renderer interface.
package render

import (
	"fmt"
	"sort"

	rerrors "github.com/relkit/cli/internal/errors"
	"github.com/relkit/cli/internal/upgrade"
)

// kindRank orders instruction kinds for execution: removals first so a
// module can be removed and re-added within one sequence, then additions,
// then in-place changes.
var kindRank = map[upgrade.ChangeKind]int{
	upgrade.KindRemoved: 0,
	upgrade.KindAdded:   1,
	upgrade.KindChanged: 2,
}

// Renderer produces a deterministic instruction sequence from tagged changes.
type Renderer struct{}

// New creates the default renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render sorts the tagged changes into removed, added, changed order, each
// group sorted by module identifier. Unknown change kinds are rejected.
func (r *Renderer) Render(tagged []upgrade.Instruction) ([]upgrade.Instruction, error) {
	out := make([]upgrade.Instruction, len(tagged))
	copy(out, tagged)

	for _, in := range out {
		if _, ok := kindRank[in.Kind]; !ok {
			return nil, fmt.Errorf("%w: unknown change kind %q for module %q",
				rerrors.ErrConfiguration, in.Kind, in.Module)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if kindRank[out[i].Kind] != kindRank[out[j].Kind] {
			return kindRank[out[i].Kind] < kindRank[out[j].Kind]
		}
		return out[i].Module < out[j].Module
	})

	return out, nil
}
