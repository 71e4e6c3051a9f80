package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goinspect/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	drilldown    string
	maxChars     int
	ignorePrefix string
	markup       bool
	renderer     string
	colorMode    string
)

var rootCmd = &cobra.Command{
	Use:   "goinspect",
	Short: "Runtime object inspector",
	Long: `A diagnostic tool that reports the members of live Go values, follows a
chosen member from object to object, and maps the ancestor graph of types
and runtime classes.

Features:
  - Drilldown reports with per-object headers and cycle-safe recursion
  - Ancestor graphs with a resolution order computed by Kahn's algorithm
  - Single-level value dumps in text or markup
  - Targets from built-in samples, YAML/JSON files, MySQL DSNs or the config`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultConfigFile,
		"Path to configuration file (built-in defaults if the default file is missing)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Inspection overrides
	rootCmd.PersistentFlags().StringVar(&drilldown, "drilldown", "",
		"Member to follow from object to object")
	rootCmd.PersistentFlags().IntVar(&maxChars, "max-chars", -1,
		"Maximum characters shown per value (-1 for unbounded)")
	rootCmd.PersistentFlags().StringVar(&ignorePrefix, "ignore-prefix", "",
		"Hide members whose name starts with this prefix")
	rootCmd.PersistentFlags().StringVar(&renderer, "renderer", "",
		"Override value renderer (fmt, spew)")

	// Output overrides
	rootCmd.PersistentFlags().BoolVar(&markup, "markup", false,
		"Write HTML markup instead of plain text")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "",
		"Override colored output (auto, always, never)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the CLI flag override values. Numeric and prefix
// flags only override the config file when given explicitly.
func GetCLIOverrides() config.Overrides {
	o := config.Overrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Drilldown: drilldown,
		Renderer:  renderer,
		Color:     colorMode,
		Format:    basesFormat,
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("max-chars") {
		n := maxChars
		o.MaxOutputChars = &n
	}
	if flags.Changed("ignore-prefix") {
		p := ignorePrefix
		o.IgnorePrefix = &p
	}
	if markup {
		o.Mode = "markup"
	}
	return o
}
