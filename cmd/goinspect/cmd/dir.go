package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goinspect/internal/walker"
)

var dirCmd = &cobra.Command{
	Use:   "dir <target>",
	Short: "Report the members of a value and follow one of them",
	Long: `Dir prints a report block for the target listing every member with its
value. With --drilldown the named member is followed from object to object;
each object is reported once, so cyclic structures terminate.

Targets:
  sample:<name>   built-in example (see "goinspect samples")
  file:<path>     YAML or JSON document
  dsn:<dsn>       parsed MySQL data source name
  config          the loaded configuration

Example:
  goinspect dir sample:ring --drilldown Next --ignore-prefix '$'
  goinspect dir sample:Sub --drilldown '$type'`,
	Args: cobra.ExactArgs(1),
	RunE: runDir,
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	target, err := resolveTarget(args[0], env.cfg)
	if err != nil {
		return err
	}

	opts := walker.DrillOptions{
		Attribute:      env.cfg.Inspect.Drilldown,
		MaxOutputChars: env.cfg.Inspect.MaxOutputChars,
		IgnorePrefix:   env.cfg.Inspect.IgnorePrefix,
		Exclude:        env.cfg.Inspect.Exclude,
	}

	session := env.session(args[0], walker.WithSink(env.sink()))
	if err := session.DrillDown(target, opts); err != nil {
		return fmt.Errorf("drilldown failed: %w", err)
	}

	env.log.Infow("dir finished", "target", args[0], "objects", session.History().Len())
	return nil
}
