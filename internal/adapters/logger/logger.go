package logger

import (
	"fmt"

	"go.uber.org/zap"
)

type option func(*zap.Config)

// OutputPath adds a log file next to stderr output.
func OutputPath(path string) option {
	return func(cfg *zap.Config) {
		if path != "" {
			cfg.OutputPaths = append(cfg.OutputPaths, path)
		}
	}
}

func New(level string, options ...option) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}

	for _, opt := range options {
		opt(&cfg)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed build logger: %w", err)
	}

	return log, nil
}
