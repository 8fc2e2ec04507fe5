// Package release provides the release descriptor data model and loader.
//
// A release descriptor lists the versioned components a deployable release
// is built from, each pointing at the artifact directory the component was
// built into. Descriptors are read-only inputs to upgrade resolution.
package release

// ComponentVersion identifies a component at a specific version.
// Version is an opaque token compared only for equality, never ordered.
type ComponentVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ComponentInfo describes one component of a release.
type ComponentInfo struct {
	// Name is the stable component identifier.
	Name string `json:"name"`

	// Version is the component's version in this release.
	Version string `json:"version"`

	// ArtifactDir is the directory holding the component's built artifacts.
	ArtifactDir string `json:"artifactDir"`
}

// Ref returns the component's (name, version) identity.
func (c ComponentInfo) Ref() ComponentVersion {
	return ComponentVersion{Name: c.Name, Version: c.Version}
}

// Descriptor is a loaded release descriptor.
// The order of Components is preserved from the source file and drives the
// ordering of all downstream output.
type Descriptor struct {
	// SourceFile is the path the descriptor was loaded from.
	SourceFile string

	// Name is the release name, for diagnostics only.
	Name string

	// Metadata carries release-level metadata. It is opaque to upgrade
	// resolution and passed through untouched.
	Metadata map[string]interface{}

	// Components is the ordered component list.
	Components []ComponentInfo
}

// Component returns the component with the given name and whether it exists.
func (d Descriptor) Component(name string) (ComponentInfo, bool) {
	for _, c := range d.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ComponentInfo{}, false
}
