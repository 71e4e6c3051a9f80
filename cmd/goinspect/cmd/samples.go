package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/goinspect/internal/samples"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the built-in example targets",
	Long: `Samples lists the example hierarchies that can be inspected with a
sample:<name> target.

Example:
  goinspect samples
  goinspect bases sample:J`,
	Args: cobra.NoArgs,
	Run:  runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) {
	table := tablewriter.NewWriter(outputWriter)
	table.SetHeader([]string{"Target", "Description"})
	for _, s := range samples.All() {
		table.Append([]string{targetSample + s.Name, s.Description})
	}
	table.Render()
}
