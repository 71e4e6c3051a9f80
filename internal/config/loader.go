package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the specified file path.
// It supports YAML files and performs environment variable substitution.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadOrDefault behaves like Load, except that a missing DefaultConfigFile
// yields the built-in defaults. An explicitly named file must exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigFile
	}
	if configPath == DefaultConfigFile {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
	}
	return Load(configPath)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	substituteEnvVars(cfg)
	return cfg, nil
}

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// substituteEnvVars replaces ${VAR_NAME} patterns with environment variable values.
// Inspect settings are left alone since "$" starts pseudo-member names.
func substituteEnvVars(cfg *Config) {
	cfg.Logging.Output = expandEnvVar(cfg.Logging.Output)
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		// Return original if env var not found
		return match
	})
}

// Overrides holds CLI flag values that take precedence over the file.
// Zero values mean "not set"; MaxOutputChars uses nil for that.
type Overrides struct {
	LogLevel       string
	LogFormat      string
	Drilldown      string
	MaxOutputChars *int
	IgnorePrefix   *string
	Renderer       string
	Mode           string
	Color          string
	Format         string
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only set values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.Drilldown != "" {
		c.Inspect.Drilldown = o.Drilldown
	}
	if o.MaxOutputChars != nil {
		c.Inspect.MaxOutputChars = *o.MaxOutputChars
	}
	if o.IgnorePrefix != nil {
		c.Inspect.IgnorePrefix = *o.IgnorePrefix
	}
	if o.Renderer != "" {
		c.Inspect.Renderer = o.Renderer
	}
	if o.Mode != "" {
		c.Output.Mode = o.Mode
	}
	if o.Color != "" {
		c.Output.Color = o.Color
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
}
