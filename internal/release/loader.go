package release

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	rerrors "github.com/relkit/cli/internal/errors"
)

// descriptorFile is the on-disk YAML form of a release descriptor.
type descriptorFile struct {
	Name       string                 `json:"name"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Components []ComponentInfo        `json:"components"`
}

// Load reads a release descriptor from a YAML file.
//
// Relative artifact directories are resolved against the descriptor's own
// directory, so descriptors can travel with the release tree they describe.
// Unknown fields are rejected.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rerrors.NewNotFoundError("release descriptor does not exist", path, "")
		}
		return nil, rerrors.NewIOError("reading release descriptor", path, "", err)
	}

	var file descriptorFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, rerrors.NewConfigurationError(
			fmt.Sprintf("parsing release descriptor: %v", err), path, "", "")
	}

	if len(file.Components) == 0 {
		return nil, rerrors.NewConfigurationError(
			"release descriptor has no components", path, "", "")
	}

	baseDir := filepath.Dir(path)
	components := make([]ComponentInfo, 0, len(file.Components))
	seen := make(map[string]bool, len(file.Components))
	for _, c := range file.Components {
		if c.Name == "" || c.Version == "" || c.ArtifactDir == "" {
			return nil, rerrors.NewConfigurationError(
				fmt.Sprintf("component %q is missing name, version, or artifactDir", c.Name),
				path, c.Name, "")
		}
		if seen[c.Name] {
			return nil, rerrors.NewConfigurationError(
				fmt.Sprintf("component %q is listed more than once", c.Name),
				path, c.Name, "")
		}
		seen[c.Name] = true

		if !filepath.IsAbs(c.ArtifactDir) {
			c.ArtifactDir = filepath.Join(baseDir, c.ArtifactDir)
		}
		components = append(components, c)
	}

	return &Descriptor{
		SourceFile: path,
		Name:       file.Name,
		Metadata:   file.Metadata,
		Components: components,
	}, nil
}

// LoadAll loads several descriptors, preserving argument order.
func LoadAll(paths []string) ([]Descriptor, error) {
	descriptors := make([]Descriptor, 0, len(paths))
	for _, p := range paths {
		d, err := Load(p)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, *d)
	}
	return descriptors, nil
}
