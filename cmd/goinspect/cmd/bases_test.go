package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBasesCommandStructure(t *testing.T) {
	assert.NotNil(t, basesCmd)
	assert.Equal(t, "bases <target>", basesCmd.Use)
	assert.NotEmpty(t, basesCmd.Short)
	assert.NotEmpty(t, basesCmd.Long)
	assert.NotNil(t, basesCmd.RunE)
	assert.True(t, hasSubcommand("bases"), "bases command should be added to root command")
}

func TestBasesCommandFlags(t *testing.T) {
	flags := basesCmd.Flags()

	formatFlag := flags.Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "", formatFlag.DefValue)

	historyFlag := flags.Lookup("history")
	require.NotNil(t, historyFlag)
	assert.Equal(t, "false", historyFlag.DefValue)
}

func runBasesCapture(t *testing.T, target, format string, withHistory bool) (string, error) {
	t.Helper()

	origFormat, origHistory := basesFormat, basesHistory
	t.Cleanup(func() {
		basesFormat, basesHistory = origFormat, origHistory
	})
	basesFormat = format
	basesHistory = withHistory

	var buf bytes.Buffer
	setOutputWriter(&buf)
	t.Cleanup(resetOutputWriter)

	err := runBases(basesCmd, []string{target})
	return buf.String(), err
}

func TestRunBases_Table(t *testing.T) {
	output, err := runBasesCapture(t, "sample:diamond", "", false)
	require.NoError(t, err)

	assert.Contains(t, output, "Ancestors: sample:diamond")
	assert.Contains(t, output, "[Edges]")
	assert.Contains(t, output, "DiamondLeft, DiamondRight")
	assert.Contains(t, output, "[1] Diamond\n")
	assert.Contains(t, output, "[2] DiamondLeft\n")
	assert.Contains(t, output, "[3] DiamondRight\n")
	assert.Contains(t, output, "[4] DiamondBase\n")
	assert.Contains(t, output, "[Root Bases]")
	assert.Contains(t, output, "  DiamondBase\n")
	assert.NotContains(t, output, "[Visited Objects]")
}

func TestRunBases_Cycle(t *testing.T) {
	output, err := runBasesCapture(t, "sample:cyclic", "", false)
	require.NoError(t, err)

	assert.Contains(t, output, "cycle detected in ancestor graph")
	assert.Contains(t, output, "Cycle path: First")
	assert.Contains(t, output, "none, every object has a base")
	assert.NotContains(t, output, "[1] ")
}

func TestRunBases_YAML(t *testing.T) {
	output, err := runBasesCapture(t, "sample:diamond", "yaml", false)
	require.NoError(t, err)

	var doc basesDocument
	require.NoError(t, yaml.Unmarshal([]byte(output), &doc))

	assert.NotEmpty(t, doc.Session)
	assert.Equal(t, "Diamond", doc.Root)
	assert.Len(t, doc.Edges, 5)
	assert.Equal(t, []string{"Diamond", "DiamondLeft", "DiamondRight", "DiamondBase"}, doc.Objects)
	assert.Equal(t, []string{"DiamondBase"}, doc.Leaves)
	assert.Equal(t, []string{"Diamond", "DiamondLeft", "DiamondRight", "DiamondBase"}, doc.Order)
	assert.Empty(t, doc.Cycle)
	assert.Empty(t, doc.Visited)
}

func TestRunBases_YAMLCycle(t *testing.T) {
	output, err := runBasesCapture(t, "sample:cyclic", "yaml", false)
	require.NoError(t, err)

	var doc basesDocument
	require.NoError(t, yaml.Unmarshal([]byte(output), &doc))

	assert.Empty(t, doc.Order)
	assert.Contains(t, doc.Cycle, "cycle detected in ancestor graph")
	assert.NotEmpty(t, doc.Objects)
}

func TestRunBases_Mermaid(t *testing.T) {
	output, err := runBasesCapture(t, "sample:diamond", "mermaid", false)
	require.NoError(t, err)

	assert.Contains(t, output, "graph TD\n")
	assert.Contains(t, output, "    Diamond --> DiamondLeft\n")
	assert.Contains(t, output, "    DiamondRight --> DiamondBase\n")
}

func TestRunBases_History(t *testing.T) {
	output, err := runBasesCapture(t, "sample:Sub{}", "", true)
	require.NoError(t, err)

	assert.Contains(t, output, "[Visited Objects]")
	assert.Contains(t, output, "[1] Instance sample:Sub{}")
	assert.Contains(t, output, "Cowbell")
}

func TestRunBases_InvalidFormat(t *testing.T) {
	_, err := runBasesCapture(t, "sample:diamond", "dot", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
