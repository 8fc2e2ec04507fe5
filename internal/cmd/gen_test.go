package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	rerrors "github.com/relkit/cli/internal/errors"
	"github.com/relkit/cli/internal/testutil"
	"github.com/relkit/cli/internal/upgrade"
)

// writeScenario lays out two releases on disk: foo changes 1.0 -> 2.0,
// bar stays at 1.0. Returns the prior and target descriptor paths.
func writeScenario(t *testing.T, dir string) (string, string) {
	t.Helper()

	testutil.ArtifactDir(t, dir, "r1/foo", map[string]string{"M": "one"})
	testutil.ArtifactDir(t, dir, "r1/bar", map[string]string{"B": "same"})
	testutil.ArtifactDir(t, dir, "r2/foo", map[string]string{"M": "two"})

	prior := testutil.WriteFile(t, dir, "r1.yaml", `name: r1
components:
  - name: foo
    version: "1.0"
    artifactDir: r1/foo
  - name: bar
    version: "1.0"
    artifactDir: r1/bar
`)
	target := testutil.WriteFile(t, dir, "r2.yaml", `name: r2
components:
  - name: foo
    version: "2.0"
    artifactDir: r2/foo
  - name: bar
    version: "1.0"
    artifactDir: r1/bar
`)
	return prior, target
}

func TestRunGen_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	prior, target := writeScenario(t, dir)
	ledgerOut := filepath.Join(dir, "ledger.yaml")

	err := runGen(context.Background(), &genOptions{
		target:    target,
		priors:    []string{prior},
		ledgerOut: ledgerOut,
	})
	require.NoError(t, err)

	// Instruction file is written next to foo's target artifacts
	file, err := upgrade.Load(filepath.Join(dir, "r2", "foo", "foo.instructions.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "2.0", file.Version)
	assert.Equal(t, []string{"1.0"}, file.UpFromVersions())

	// bar is untouched: no instruction file in its artifact dir
	_, err = upgrade.Load(filepath.Join(dir, "r1", "bar", "bar.instructions.yaml"))
	assert.True(t, errors.Is(err, rerrors.ErrNotFound))

	// Ledger file holds the full history for foo and a no-op entry for bar
	var ledger map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(testutil.ReadFile(t, ledgerOut)), &ledger))
	assert.Equal(t, map[string][]string{
		"foo": {"1.0", "2.0"},
		"bar": {"1.0"},
	}, ledger)
}

func TestRunGen_MissingTargetDescriptor(t *testing.T) {
	err := runGen(context.Background(), &genOptions{
		target: filepath.Join(t.TempDir(), "nope.yaml"),
		priors: []string{"also-nope.yaml"},
	})

	assert.True(t, errors.Is(err, rerrors.ErrNotFound))
	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestRunVet(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "good.instructions.yaml", `version: "2.0"
upFrom:
  - version: "1.0"
    instructions:
      - kind: changed
        module: M
downTo:
  - version: "1.0"
    instructions: []
`)
	bad := testutil.WriteFile(t, dir, "bad.instructions.yaml", `version: "2.0"
upFrom:
  - version: "1.0"
    instructions: []
downTo: []
`)

	assert.NoError(t, runVet([]string{good}))

	err := runVet([]string{bad})
	assert.True(t, errors.Is(err, rerrors.ErrConfiguration))
}

func TestRunLedger_DryRun(t *testing.T) {
	dir := t.TempDir()
	prior, target := writeScenario(t, dir)

	err := runLedger(&ledgerOptions{target: target, priors: []string{prior}})
	require.NoError(t, err)

	// Resolve-only: no instruction file may be written
	_, err = upgrade.Load(filepath.Join(dir, "r2", "foo", "foo.instructions.yaml"))
	assert.True(t, errors.Is(err, rerrors.ErrNotFound))
}
