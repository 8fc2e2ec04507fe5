package output

// Dyff integration for YAML-aware comparison of instruction files.
// Instruction files are plain YAML records, so dyff's structural report is
// a better review surface than a line diff.

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// CompareInstructionFiles computes a YAML-aware diff between two instruction
// files on disk. Returns an empty string when the files are structurally equal.
func CompareInstructionFiles(pathA, pathB string, useColor bool) (string, error) {
	dataA, err := os.ReadFile(pathA)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", pathA, err)
	}

	dataB, err := os.ReadFile(pathB)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", pathB, err)
	}

	return CompareYAML(pathA, dataA, pathB, dataB, useColor)
}

// CompareYAML computes a YAML-aware diff between two YAML byte slices.
func CompareYAML(nameA string, dataA []byte, nameB string, dataB []byte, useColor bool) (string, error) {
	inputA, err := parseYAMLInput(nameA, dataA)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", nameA, err)
	}

	inputB, err := parseYAMLInput(nameB, dataB)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", nameB, err)
	}

	report, err := dyff.CompareInputFiles(inputA, inputB)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	// If no differences, return empty string
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	// Clean up output - remove trailing whitespace from lines
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n"), nil
}
