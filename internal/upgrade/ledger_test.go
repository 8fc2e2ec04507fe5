package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLedger_UpgradedAndUntouchedComponents(t *testing.T) {
	target := rel("r2.yaml", comp("foo", "2.0", "a2"), comp("bar", "1.0", "b"))
	generated := []GeneratedInfo{
		{Name: "foo", OldVersions: []string{"1.0"}},
	}

	ledger := BuildLedger(target, generated)

	assert.Equal(t, Ledger{
		"foo": {"1.0", "2.0"},
		"bar": {"1.0"},
	}, ledger)
}

func TestBuildLedger_OrderPreserved(t *testing.T) {
	target := rel("r3.yaml", comp("foo", "3.0", "a3"))
	generated := []GeneratedInfo{
		{Name: "foo", OldVersions: []string{"1.1", "1.0", "2.0"}},
	}

	ledger := BuildLedger(target, generated)

	assert.Equal(t, []string{"1.1", "1.0", "2.0", "3.0"}, ledger["foo"])
}

func TestBuildLedger_EmptyGeneration(t *testing.T) {
	target := rel("r1.yaml", comp("foo", "1.0", "a"), comp("bar", "1.0", "b"))

	ledger := BuildLedger(target, nil)

	assert.Equal(t, Ledger{
		"foo": {"1.0"},
		"bar": {"1.0"},
	}, ledger)
}
