package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/faloiraq/falo/internal/adapters/api/rest"
	"github.com/faloiraq/falo/internal/adapters/store"
	"github.com/faloiraq/falo/internal/adapters/store/database"
	"github.com/faloiraq/falo/internal/core/falo"
)

type Config struct {
	Rest     *rest.Config
	Store    *store.Config
	Falo     *falo.Config
	Secret   string `env:"SECRET_KEY" envDefault:"secret_key"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"LOG_PATH"`
}

func Init() (*Config, error) {
	cfg := &Config{
		Rest: &rest.Config{},
		Store: &store.Config{
			Database: &database.Config{},
		},
		Falo: &falo.Config{},
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed load enviorements from file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("failed parse env: %w", err)
	}

	flag.StringVar(&cfg.Rest.Address, "a", cfg.Rest.Address, "address listen")
	flag.StringVar(&cfg.Store.Database.DSN, "d", cfg.Store.Database.DSN, "database dsn")
	flag.StringVar(&cfg.Store.Database.SeedPath, "s", cfg.Store.Database.SeedPath, "sealed catalog seed file")
	flag.Parse()

	return cfg, nil
}
