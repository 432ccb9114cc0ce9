package configs

import "time"

// Auth configures session tokens issued after wallet signature login. An
// empty secret disables token issuance; address recovery still works.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
