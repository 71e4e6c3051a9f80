// Package config provides configuration structures and loading for goinspect.
package config

// DefaultConfigFile is looked up when no --config flag is given.
const DefaultConfigFile = "goinspect.yaml"

// Config represents the complete application configuration.
type Config struct {
	Inspect InspectConfig `yaml:"inspect" mapstructure:"inspect"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// InspectConfig controls how objects are walked and rendered.
type InspectConfig struct {
	Drilldown      string   `yaml:"drilldown" mapstructure:"drilldown"`               // Member to recurse into, empty for none
	MaxOutputChars int      `yaml:"max_output_chars" mapstructure:"max_output_chars"` // -1 for unbounded
	IgnorePrefix   string   `yaml:"ignore_prefix" mapstructure:"ignore_prefix"`       // Members with this prefix are hidden
	Exclude        []string `yaml:"exclude" mapstructure:"exclude"`                   // Members never resolved
	Renderer       string   `yaml:"renderer" mapstructure:"renderer"`                 // fmt or spew
	SpewDepth      int      `yaml:"spew_depth" mapstructure:"spew_depth"`
}

// OutputConfig controls report presentation.
type OutputConfig struct {
	Mode      string `yaml:"mode" mapstructure:"mode"`             // text or markup
	Color     string `yaml:"color" mapstructure:"color"`           // auto, always, never
	NameWidth int    `yaml:"name_width" mapstructure:"name_width"` // Member name column width
	Format    string `yaml:"format" mapstructure:"format"`         // table, yaml or mermaid for edge lists
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Inspect: InspectConfig{
			MaxOutputChars: -1,
			Exclude:        []string{"$string"},
			Renderer:       "fmt",
			SpewDepth:      3,
		},
		Output: OutputConfig{
			Mode:      "text",
			Color:     "auto",
			NameWidth: 20,
			Format:    "table",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
