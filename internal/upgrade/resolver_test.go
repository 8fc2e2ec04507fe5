package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relkit/cli/internal/release"
)

// recordLogger captures log calls for assertions.
type recordLogger struct {
	debugs []string
	infos  []string
	warns  []string
}

func (l *recordLogger) Debug(msg string, _ ...interface{}) { l.debugs = append(l.debugs, msg) }
func (l *recordLogger) Info(msg string, _ ...interface{})  { l.infos = append(l.infos, msg) }
func (l *recordLogger) Warn(msg string, _ ...interface{})  { l.warns = append(l.warns, msg) }

func comp(name, version, dir string) release.ComponentInfo {
	return release.ComponentInfo{Name: name, Version: version, ArtifactDir: dir}
}

func rel(source string, components ...release.ComponentInfo) release.Descriptor {
	return release.Descriptor{SourceFile: source, Components: components}
}

func TestResolve_OnlyChangedComponents(t *testing.T) {
	prior := []release.Descriptor{
		rel("r1.yaml", comp("foo", "1.0", "a"), comp("bar", "1.0", "b")),
	}
	target := rel("r2.yaml", comp("foo", "2.0", "a2"), comp("bar", "1.0", "b"))

	units := NewResolver(nil).Resolve(prior, target)

	require.Len(t, units, 1)
	assert.Equal(t, "foo", units[0].NewInfo.Name)
	assert.Equal(t, []string{"1.0"}, units[0].OldVersions())
}

func TestResolve_ComponentMissingFromTarget_Ignored(t *testing.T) {
	prior := []release.Descriptor{
		rel("r1.yaml", comp("gone", "1.0", "g")),
	}
	target := rel("r2.yaml", comp("foo", "2.0", "a"))

	units := NewResolver(nil).Resolve(prior, target)
	assert.Empty(t, units)
}

func TestResolve_DedupAcrossPriorReleases(t *testing.T) {
	prior := []release.Descriptor{
		rel("r1.yaml", comp("foo", "1.0", "a")),
		rel("r2.yaml", comp("foo", "1.0", "a")),
	}
	target := rel("r3.yaml", comp("foo", "2.0", "a3"))

	units := NewResolver(nil).Resolve(prior, target)

	require.Len(t, units, 1)
	assert.Equal(t, []string{"1.0"}, units[0].OldVersions())
}

func TestResolve_MultipleOldVersions_FirstSeenOrder(t *testing.T) {
	prior := []release.Descriptor{
		rel("r1.yaml", comp("foo", "1.1", "a11")),
		rel("r2.yaml", comp("foo", "1.0", "a10")),
	}
	target := rel("r3.yaml", comp("foo", "2.0", "a20"))

	units := NewResolver(nil).Resolve(prior, target)

	require.Len(t, units, 1)
	assert.Equal(t, []string{"1.1", "1.0"}, units[0].OldVersions())
}

func TestResolve_UnitsFollowTargetComponentOrder(t *testing.T) {
	prior := []release.Descriptor{
		rel("r1.yaml", comp("zeta", "1.0", "z"), comp("alpha", "1.0", "a")),
	}
	target := rel("r2.yaml", comp("alpha", "2.0", "a2"), comp("zeta", "2.0", "z2"))

	units := NewResolver(nil).Resolve(prior, target)

	require.Len(t, units, 2)
	assert.Equal(t, "alpha", units[0].NewInfo.Name)
	assert.Equal(t, "zeta", units[1].NewInfo.Name)
}

func TestResolve_NoOrderingSemantics_AnyDifferenceIsAnEdge(t *testing.T) {
	// "2.0" -> "1.0" is still an edge: versions are opaque tokens
	prior := []release.Descriptor{
		rel("r1.yaml", comp("foo", "2.0", "a2")),
	}
	target := rel("r2.yaml", comp("foo", "1.0", "a1"))

	units := NewResolver(nil).Resolve(prior, target)

	require.Len(t, units, 1)
	assert.Equal(t, []string{"2.0"}, units[0].OldVersions())
}

func TestResolve_DuplicateWithConflictingArtifactDir_FirstWinsAndWarns(t *testing.T) {
	log := &recordLogger{}
	prior := []release.Descriptor{
		rel("r1.yaml", comp("foo", "1.0", "first")),
		rel("r2.yaml", comp("foo", "1.0", "second")),
	}
	target := rel("r3.yaml", comp("foo", "2.0", "a2"))

	units := NewResolver(log).Resolve(prior, target)

	require.Len(t, units, 1)
	require.Len(t, units[0].OldInfos, 1)
	assert.Equal(t, "first", units[0].OldInfos[0].ArtifactDir)
	assert.Len(t, log.warns, 1, "conflicting artifact dirs must be logged")
}

func TestResolve_LogsOneLinePerUnit(t *testing.T) {
	log := &recordLogger{}
	prior := []release.Descriptor{
		rel("r1.yaml", comp("foo", "1.0", "a"), comp("bar", "1.0", "b")),
	}
	target := rel("r2.yaml", comp("foo", "2.0", "a2"), comp("bar", "2.0", "b2"))

	units := NewResolver(log).Resolve(prior, target)

	assert.Len(t, units, 2)
	assert.Len(t, log.infos, 2)
}
