package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goinspect/internal/introspect"
	"github.com/dbsmedya/goinspect/internal/report"
)

var valuesExcludePrefix string

var valuesCmd = &cobra.Command{
	Use:   "values <target>",
	Short: "Dump the type and attributes of a value",
	Long: `Values prints the type of the target followed by each of its attributes.
Unlike dir it does not recurse and prints no object header.

Example:
  goinspect values sample:Sub{}
  goinspect values config --exclude-prefix '' --markup`,
	Args: cobra.ExactArgs(1),
	RunE: runValues,
}

func init() {
	valuesCmd.Flags().StringVar(&valuesExcludePrefix, "exclude-prefix", introspect.PseudoPrefix,
		"Skip attributes starting with this prefix (empty lists all)")

	rootCmd.AddCommand(valuesCmd)
}

func runValues(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	target, err := resolveTarget(args[0], env.cfg)
	if err != nil {
		return err
	}

	out := report.Values(target, report.ValuesOptions{
		Mode:           env.cfg.Output.Mode,
		ExcludePrefix:  valuesExcludePrefix,
		MaxOutputChars: env.cfg.Inspect.MaxOutputChars,
		Renderer:       env.renderer(),
	})
	fmt.Fprint(outputWriter, out)
	return nil
}
