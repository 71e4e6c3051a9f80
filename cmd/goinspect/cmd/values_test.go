package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesCommandStructure(t *testing.T) {
	assert.NotNil(t, valuesCmd)
	assert.Equal(t, "values <target>", valuesCmd.Use)
	assert.NotEmpty(t, valuesCmd.Short)
	assert.NotNil(t, valuesCmd.RunE)
	assert.True(t, hasSubcommand("values"), "values command should be added to root command")

	flag := valuesCmd.Flags().Lookup("exclude-prefix")
	require.NotNil(t, flag)
	assert.Equal(t, "$", flag.DefValue)
}

func TestRunValues(t *testing.T) {
	origPrefix := valuesExcludePrefix
	defer func() { valuesExcludePrefix = origPrefix }()

	tests := []struct {
		name          string
		excludePrefix string
		want          []string
		notWant       []string
	}{
		{
			name:          "pseudo members hidden",
			excludePrefix: "$",
			want:          []string{"Variable type:", "\nData2:\n", "Cowbell"},
			notWant:       []string{"\n$type:\n"},
		},
		{
			name:          "everything listed",
			excludePrefix: "",
			want:          []string{"\n$type:\n", "\nData2:\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valuesExcludePrefix = tt.excludePrefix

			var buf bytes.Buffer
			setOutputWriter(&buf)
			defer resetOutputWriter()

			require.NoError(t, runValues(valuesCmd, []string{"sample:Sub{}"}))

			output := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, output, notWant)
			}
		})
	}
}

func TestRunValues_Config(t *testing.T) {
	var buf bytes.Buffer
	setOutputWriter(&buf)
	defer resetOutputWriter()

	require.NoError(t, runValues(valuesCmd, []string{"config"}))

	output := buf.String()
	assert.Contains(t, output, "\nInspect:\n")
	assert.Contains(t, output, "\nLogging:\n")
}
