package database

type Config struct {
	DSN      string `env:"DATABASE_URI"`
	SeedPath string `env:"CATALOG_SEED"`
	SealKey  string `env:"SEAL_KEY" envDefault:"FALO_IQ_SECURE_V4_2024_@$!_KERNEL_ENC_99"`
}
