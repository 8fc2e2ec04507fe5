package upgrade

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	rerrors "github.com/relkit/cli/internal/errors"
	"github.com/relkit/cli/internal/release"
)

// InstructionFileSuffix is appended to the component name to derive the
// instruction file name inside the component's artifact directory.
const InstructionFileSuffix = ".instructions.yaml"

// VersionInstructions pairs an old version with its instruction sequence.
// Pair order is preserved across serialization.
type VersionInstructions struct {
	Version      string        `yaml:"version"`
	Instructions []Instruction `yaml:"instructions"`
}

// InstructionFile is the persisted upgrade record for one component version.
//
// UpFrom holds the instructions transforming a running instance from each
// old version up to Version; DownTo reserves the symmetric down-path, which
// is currently always empty. The version key sets of both mappings must
// match exactly, enforced on every load and write.
type InstructionFile struct {
	Version string                `yaml:"version"`
	UpFrom  []VersionInstructions `yaml:"upFrom"`
	DownTo  []VersionInstructions `yaml:"downTo"`
}

// UpFromVersions returns the UpFrom version keys in file order.
func (f *InstructionFile) UpFromVersions() []string {
	versions := make([]string, 0, len(f.UpFrom))
	for _, vi := range f.UpFrom {
		versions = append(versions, vi.Version)
	}
	return versions
}

// PathFor derives the instruction file path for a component:
// <ArtifactDir>/<Name>.instructions.yaml.
func PathFor(info release.ComponentInfo) string {
	return filepath.Join(info.ArtifactDir, info.Name+InstructionFileSuffix)
}

// Load reads and validates an instruction file.
//
// A missing file surfaces as errors.ErrNotFound so callers can fall through
// to generation. A file that is not exactly one well-formed record, or that
// fails the version-set symmetry check, surfaces as a configuration error;
// any other read failure is an I/O error.
func Load(path string) (*InstructionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rerrors.NewNotFoundError("instruction file does not exist", path, "")
		}
		return nil, rerrors.NewIOError("reading instruction file", path, "", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file InstructionFile
	if err := dec.Decode(&file); err != nil {
		return nil, rerrors.NewConfigurationError(
			fmt.Sprintf("instruction file is not a single well-formed record: %v", err),
			path, "", "regenerate the file by deleting it and re-running generation")
	}

	// Reject trailing documents: the format is exactly one record.
	if err := dec.Decode(new(InstructionFile)); !errors.Is(err, io.EOF) {
		return nil, rerrors.NewConfigurationError(
			"instruction file contains more than one record",
			path, "", "regenerate the file by deleting it and re-running generation")
	}

	if file.Version == "" {
		return nil, rerrors.NewConfigurationError(
			"instruction file record has no version", path, "", "")
	}

	if err := Validate(&file); err != nil {
		return nil, rerrors.NewConfigurationError(err.Error(), path, "", "")
	}

	return &file, nil
}

// Validate checks the UpFrom/DownTo version-set symmetry invariant.
// It compares version key sets only, never instruction contents: down-path
// sequences are allowed to stay empty.
func Validate(f *InstructionFile) error {
	up, err := versionSet(f.UpFrom, "upFrom")
	if err != nil {
		return err
	}
	down, err := versionSet(f.DownTo, "downTo")
	if err != nil {
		return err
	}

	if len(up) != len(down) {
		return fmt.Errorf("%w: upFrom versions %v do not match downTo versions %v",
			rerrors.ErrConfiguration, up, down)
	}
	for i := range up {
		if up[i] != down[i] {
			return fmt.Errorf("%w: upFrom versions %v do not match downTo versions %v",
				rerrors.ErrConfiguration, up, down)
		}
	}
	return nil
}

// versionSet returns the sorted version keys of a pair list, rejecting
// duplicate keys.
func versionSet(pairs []VersionInstructions, field string) ([]string, error) {
	versions := make([]string, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if seen[p.Version] {
			return nil, fmt.Errorf("%w: duplicate %s version %q",
				rerrors.ErrConfiguration, field, p.Version)
		}
		seen[p.Version] = true
		versions = append(versions, p.Version)
	}
	sort.Strings(versions)
	return versions, nil
}

// Write validates and persists an instruction file.
//
// The record is prefixed with a header comment carrying the generation
// timestamp and followed by a blank line. The write goes through a temp
// file plus rename in the target directory, so readers never observe a
// partial record.
func Write(path string, f *InstructionFile) error {
	if err := Validate(f); err != nil {
		return rerrors.NewConfigurationError(err.Error(), path, "", "")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Generated by relkit on %s. Edits are preserved: an existing\n", time.Now().UTC().Format(time.RFC3339))
	buf.WriteString("# file is trusted verbatim and never regenerated.\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return rerrors.NewIOError("serializing instruction file", path, "", err)
	}
	if err := enc.Close(); err != nil {
		return rerrors.NewIOError("serializing instruction file", path, "", err)
	}
	buf.WriteString("\n")

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return rerrors.NewIOError("creating instruction file", path, "", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return rerrors.NewIOError("writing instruction file", path, "", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return rerrors.NewIOError("writing instruction file", path, "", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return rerrors.NewIOError("writing instruction file", path, "", err)
	}

	return nil
}
