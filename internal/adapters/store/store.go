package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/faloiraq/falo/internal/adapters/store/database"
	"github.com/faloiraq/falo/internal/core/falo"
)

type Config struct {
	Database *database.Config
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (falo.Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
