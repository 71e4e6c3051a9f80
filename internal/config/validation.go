package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateInspect()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateInspect() ValidationErrors {
	var errors ValidationErrors

	if c.Inspect.MaxOutputChars < -1 {
		errors = append(errors, ValidationError{
			Field:   "inspect.max_output_chars",
			Message: "max_output_chars must be -1 (unbounded) or non-negative",
		})
	}

	validRenderers := map[string]bool{"fmt": true, "spew": true, "": true}
	if !validRenderers[c.Inspect.Renderer] {
		errors = append(errors, ValidationError{
			Field:   "inspect.renderer",
			Message: "renderer must be 'fmt' or 'spew'",
		})
	}

	if c.Inspect.SpewDepth < 0 {
		errors = append(errors, ValidationError{
			Field:   "inspect.spew_depth",
			Message: "spew_depth cannot be negative",
		})
	}

	for i, name := range c.Inspect.Exclude {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("inspect.exclude[%d]", i),
				Message: "member name cannot be empty",
			})
		}
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validModes := map[string]bool{"text": true, "markup": true, "": true}
	if !validModes[c.Output.Mode] {
		errors = append(errors, ValidationError{
			Field:   "output.mode",
			Message: "mode must be 'text' or 'markup'",
		})
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[c.Output.Color] {
		errors = append(errors, ValidationError{
			Field:   "output.color",
			Message: "color must be 'auto', 'always', or 'never'",
		})
	}

	if c.Output.NameWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "output.name_width",
			Message: "name_width cannot be negative",
		})
	}

	validFormats := map[string]bool{"table": true, "yaml": true, "mermaid": true, "": true}
	if !validFormats[c.Output.Format] {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: "format must be 'table', 'yaml', or 'mermaid'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
