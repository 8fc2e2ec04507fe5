package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLedgerTable(t *testing.T) {
	out := RenderLedgerTable([]LedgerRow{
		{Name: "foo", Versions: []string{"1.0", "2.0"}},
		{Name: "bar", Versions: []string{"1.0"}},
	})

	assert.Contains(t, out, "COMPONENT")
	assert.Contains(t, out, "foo")
	assert.Contains(t, out, "1.0 -> 2.0")
	assert.Contains(t, out, "no-op")
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, ParseOutputFormat("yaml"))
	assert.Equal(t, FormatYAML, ParseOutputFormat("YML"))
	assert.Equal(t, FormatTable, ParseOutputFormat("table"))
	assert.Equal(t, FormatTable, ParseOutputFormat(""))
	assert.Equal(t, FormatTable, ParseOutputFormat("bogus"))
}
