package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goinspect/internal/config"
	"github.com/dbsmedya/goinspect/internal/logger"
	"github.com/dbsmedya/goinspect/internal/report"
	"github.com/dbsmedya/goinspect/internal/textfmt"
	"github.com/dbsmedya/goinspect/internal/walker"
)

// environment is the configuration and logger shared by one command run.
type environment struct {
	cfg *config.Config
	log *logger.Logger
}

// setup loads the configuration, applies CLI overrides, validates the
// result and builds the logger.
func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(GetCLIOverrides())

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log = log.WithCommand(cmd.Name()).WithFields(map[string]interface{}{
		"config": GetConfigFile(),
		"mode":   cfg.Output.Mode,
	})
	log.Debugw("configuration loaded", "drilldown", cfg.Inspect.Drilldown)

	return &environment{cfg: cfg, log: log}, nil
}

func (e *environment) renderer() *textfmt.Renderer {
	return textfmt.NewRenderer(e.cfg.Inspect.Renderer, e.cfg.Inspect.SpewDepth)
}

// sink returns the report sink configured for outputWriter.
func (e *environment) sink() report.Sink {
	return report.NewSink(e.cfg.Output.Mode, outputWriter, e.cfg.Output.NameWidth,
		useColor(e.cfg.Output.Color, outputWriter))
}

// session starts a fresh walk session whose root is reported under label.
func (e *environment) session(label string, opts ...walker.Option) *walker.Session {
	opts = append([]walker.Option{
		walker.WithLogger(e.log),
		walker.WithRenderer(e.renderer()),
		walker.WithLabel(label),
	}, opts...)
	return walker.NewSession(opts...)
}
