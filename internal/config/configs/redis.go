package configs

// Redis configures the shared price cell. Disabled means the oracle keeps
// its last known rate in process memory only.
type Redis struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	URL     string `env:"URL" envDefault:"redis://localhost:6379/0"`
	// KeyPrefix namespaces keys when several deployments share one Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"campaigns"`
}
