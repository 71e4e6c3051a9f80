package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/goinspect/internal/config"
	"github.com/dbsmedya/goinspect/internal/samples"
)

// Target prefixes accepted on the command line.
const (
	targetSample = "sample:"
	targetFile   = "file:"
	targetDSN    = "dsn:"
	targetConfig = "config"
)

const maskedPassword = "****"

// resolveTarget turns a command line target into the live value to inspect.
func resolveTarget(target string, cfg *config.Config) (any, error) {
	switch {
	case target == targetConfig:
		return cfg, nil
	case strings.HasPrefix(target, targetSample):
		return samples.Lookup(strings.TrimPrefix(target, targetSample))
	case strings.HasPrefix(target, targetFile):
		return loadDocument(strings.TrimPrefix(target, targetFile))
	case strings.HasPrefix(target, targetDSN):
		return parseDSN(strings.TrimPrefix(target, targetDSN))
	default:
		return nil, fmt.Errorf("unknown target %q (expected %s<name>, %s<path>, %s<dsn> or %s)",
			target, targetSample, targetFile, targetDSN, targetConfig)
	}
}

// loadDocument decodes a YAML or JSON file into a generic value graph.
func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return doc, nil
}

// parseDSN parses a MySQL data source name. The password is masked so it
// never shows up in a report.
func parseDSN(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}
	if cfg.Passwd != "" {
		cfg.Passwd = maskedPassword
	}
	return cfg, nil
}
