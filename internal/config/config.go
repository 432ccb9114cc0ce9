package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
	Ledger   configs.Ledger   `envPrefix:"LEDGER_"`
	Price    configs.Price    `envPrefix:"PRICE_"`
	GenAI    configs.GenAI
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present; values
// already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
